package finbook

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The three persisted row formats, one entity per line, fields joined by a
// comma with no quoting or escaping. A field value containing the delimiter
// corrupts on reload; that is the format's contract, not a codec concern.
//
//	transactions: id,date,description,amount,category,kind
//	accounts:     id,name,balance[,txid;txid;...]
//	budgets:      category,limit,spent

const fieldSep = ","
const idListSep = ";"

// DecodeTransactions reads transaction rows from r. A row that does not split
// into exactly 6 fields, or whose id, date, amount or kind fails to parse, is
// silently dropped. The returned error only reflects reader failures.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		fields := strings.Split(line, fieldSep)
		if len(fields) != 6 {
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		day, err := ParseDate(fields[1])
		if err != nil {
			continue
		}
		amount, err := decimal.NewFromString(fields[3])
		if err != nil {
			continue
		}
		kind, err := ParseKind(fields[5])
		if err != nil {
			continue
		}
		txs = append(txs, NewTransaction(id, day, fields[2], amount, fields[4], kind))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading transactions: %w", err)
	}
	return txs, nil
}

// EncodeTransactions writes one row per transaction, amounts with two
// decimals, dates in ISO-8601.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	for _, tx := range txs {
		row := strings.Join([]string{
			strconv.Itoa(tx.ID),
			tx.Date.String(),
			tx.Description,
			tx.Amount.StringFixed(2),
			tx.Category,
			tx.Kind.String(),
		}, fieldSep)
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("failed to write transaction %d: %w", tx.ID, err)
		}
	}
	return nil
}

// DecodeAccounts reads account rows from r and reconciles each account's
// transaction ID references against the already-materialized transactions.
// Rows with fewer than 3 fields or unparsable numeric fields are silently
// dropped; referenced IDs with no matching transaction are silently skipped.
//
// Reconciliation replays each resolved transaction through the same Apply
// path used for live additions, then restores the persisted balance: the
// persisted value already reflects the persisted transactions.
func DecodeAccounts(r io.Reader, txs []Transaction) ([]*Account, error) {
	byID := make(map[int]Transaction, len(txs))
	for _, tx := range txs {
		byID[tx.ID] = tx
	}

	var accounts []*Account
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		fields := strings.Split(line, fieldSep)
		if len(fields) < 3 {
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		balance, err := decimal.NewFromString(fields[2])
		if err != nil {
			continue
		}
		account := NewAccount(id, fields[1], balance)
		if len(fields) >= 4 && fields[3] != "" {
			for _, ref := range strings.Split(fields[3], idListSep) {
				txID, err := strconv.Atoi(ref)
				if err != nil {
					continue
				}
				tx, ok := byID[txID]
				if !ok {
					continue
				}
				account.Apply(tx)
			}
		}
		account.Balance = balance
		accounts = append(accounts, account)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading accounts: %w", err)
	}
	return accounts, nil
}

// EncodeAccounts writes one row per account. The transaction ID list is
// omitted entirely when the account owns no transactions.
func EncodeAccounts(w io.Writer, accounts []*Account) error {
	for _, a := range accounts {
		fields := []string{
			strconv.Itoa(a.ID),
			a.Name,
			a.Balance.StringFixed(2),
		}
		if ids := a.TransactionIDs(); len(ids) > 0 {
			refs := make([]string, len(ids))
			for i, id := range ids {
				refs[i] = strconv.Itoa(id)
			}
			fields = append(fields, strings.Join(refs, idListSep))
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, fieldSep)); err != nil {
			return fmt.Errorf("failed to write account %d: %w", a.ID, err)
		}
	}
	return nil
}

// DecodeBudgets reads budget rows from r. Rows that do not split into exactly
// 3 fields or whose numeric fields fail to parse are silently dropped.
func DecodeBudgets(r io.Reader) ([]*Budget, error) {
	var budgets []*Budget
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		fields := strings.Split(line, fieldSep)
		if len(fields) != 3 {
			continue
		}
		limit, err := decimal.NewFromString(fields[1])
		if err != nil {
			continue
		}
		spent, err := decimal.NewFromString(fields[2])
		if err != nil {
			continue
		}
		budgets = append(budgets, &Budget{Category: fields[0], Limit: limit, Spent: spent})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading budgets: %w", err)
	}
	return budgets, nil
}

// EncodeBudgets writes one row per budget, amounts with two decimals.
func EncodeBudgets(w io.Writer, budgets []*Budget) error {
	for _, b := range budgets {
		row := strings.Join([]string{
			b.Category,
			b.Limit.StringFixed(2),
			b.Spent.StringFixed(2),
		}, fieldSep)
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("failed to write budget %q: %w", b.Category, err)
		}
	}
	return nil
}
