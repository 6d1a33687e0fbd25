package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/dmitrijs2005/luca/internal/client/models"
)

var errDeleteCancelled = errors.New("account deletion cancelled")

func (a *App) printAccount(acc *models.Account) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%d\n", acc.ID)
	fmt.Fprintf(tw, "Name\t%s\n", acc.Name)
	fmt.Fprintf(tw, "Email\t%s\n", acc.Email)
	fmt.Fprintf(tw, "Phone\t%s\n", models.FormatPhone(acc.Phone))
	fmt.Fprintf(tw, "Date of birth\t%s\n", acc.DateOfBirth)
	if acc.LastLogin != nil {
		fmt.Fprintf(tw, "Last login\t%s\n", acc.LastLogin.Format("2006-01-02 15:04"))
	}
	_ = tw.Flush()
}

// Me shows the signed-in account.
func (a *App) Me(ctx context.Context) error {
	acc, err := a.session.FetchSelf(ctx)
	if err != nil {
		return err
	}
	a.printAccount(acc)
	return nil
}

// DeleteAccount removes the signed-in account after an explicit confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	ok, err := GetYesNo(a.reader, "Delete your account? This cannot be undone.", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errDeleteCancelled
	}
	if err := a.session.DeleteSelf(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}

func (a *App) Accounts(ctx context.Context) error {
	list, err := a.session.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No accounts")
		return nil
	}

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE")
	for _, acc := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", acc.ID, acc.Name, acc.Email, models.FormatPhone(acc.Phone))
	}
	return tw.Flush()
}

func (a *App) Health(ctx context.Context) error {
	h, err := a.session.Health(ctx)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.out, "%s: %s\n", k, h[k])
	}
	return nil
}
