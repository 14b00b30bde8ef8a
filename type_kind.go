package finbook

import "fmt"

// Kind classifies a transaction as income or expense, controlling the sign of
// its effect on an account balance.
type Kind int

const (
	// Income increases the balance of the account it is applied to.
	Income Kind = iota
	// Expense decreases the balance of the account it is applied to.
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "Income":
		return Income, nil
	case "Expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}
