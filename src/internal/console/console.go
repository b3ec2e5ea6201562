// Package console is the interactive text menu over the ledger services.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/retail-ledger/src/internal/commons"
	"github.com/api-sage/retail-ledger/src/internal/logger"
	"github.com/api-sage/retail-ledger/src/internal/usecase/service_interfaces"
)

const (
	inputDateLayout     = "02-01-2006"
	statementTimeLayout = "02-01-2006 15:04:05"
	separator           = "=========================================="
)

const menu = `
================ MENU ================
[d]	Deposit
[s]	Withdraw
[x]	Statement
[ac]	Open account
[lc]	List accounts
[cu]	Register client
[q]	Quit
=> `

type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	clients  service_interfaces.ClientService
	accounts service_interfaces.AccountService
}

func New(in io.Reader, out io.Writer, clients service_interfaces.ClientService, accounts service_interfaces.AccountService) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		clients:  clients,
		accounts: accounts,
	}
}

// Run serves the menu until q, end of input or ctx cancellation.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		option, ok := c.prompt(menu)
		if !ok {
			return c.in.Err()
		}

		logger.Debug("console option selected", logger.Fields{"option": option})

		switch option {
		case "d":
			c.movement(ctx, c.accounts.Deposit, "Enter the deposit amount: ", "Deposit completed!")
		case "s":
			c.movement(ctx, c.accounts.Withdraw, "Enter the withdrawal amount: ", "Withdrawal completed!")
		case "x":
			c.statement(ctx)
		case "ac":
			c.openAccount(ctx)
		case "lc":
			c.listAccounts(ctx)
		case "cu":
			c.registerClient(ctx)
		case "q":
			return nil
		default:
			c.fail("Invalid option, please try again.")
		}
	}
}

type movementFunc func(ctx context.Context, req models.MovementRequest) (commons.Response[models.MovementResponse], error)

func (c *Console) movement(ctx context.Context, apply movementFunc, amountPrompt, success string) {
	nationalID, ok := c.findClient(ctx, "Enter the client's national id: ")
	if !ok {
		return
	}

	raw, ok := c.prompt(amountPrompt)
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		c.fail("Operation failed! Invalid amount.")
		return
	}

	response, err := apply(ctx, models.MovementRequest{NationalID: nationalID, Amount: amount})
	if err != nil {
		c.fail(failureText(response.Message, response.Errors))
		return
	}
	c.succeed(success)
}

func (c *Console) statement(ctx context.Context) {
	nationalID, ok := c.findClient(ctx, "Enter the client's national id: ")
	if !ok {
		return
	}

	response, err := c.accounts.GetStatement(ctx, nationalID, 0)
	if err != nil {
		c.fail(failureText(response.Message, response.Errors))
		return
	}

	fmt.Fprint(c.out, RenderStatement(*response.Data))
}

func (c *Console) openAccount(ctx context.Context) {
	nationalID, ok := c.prompt("Enter the holder's national id: ")
	if !ok {
		return
	}

	response, err := c.accounts.OpenAccount(ctx, models.OpenAccountRequest{NationalID: nationalID})
	if err != nil {
		if response.Message == commons.MessageClientNotFound {
			c.fail("Client not found, account opening cancelled!")
			return
		}
		c.fail(failureText(response.Message, response.Errors))
		return
	}
	c.succeed("Account opened successfully!")
}

func (c *Console) listAccounts(ctx context.Context) {
	response, err := c.accounts.ListAccounts(ctx)
	if err != nil {
		c.fail(failureText(response.Message, response.Errors))
		return
	}
	fmt.Fprint(c.out, RenderAccounts(*response.Data))
}

func (c *Console) registerClient(ctx context.Context) {
	nationalID, ok := c.prompt("Enter the national id: ")
	if !ok {
		return
	}
	if existing, err := c.clients.GetClient(ctx, nationalID); err == nil && existing.Success {
		c.fail("A client with this national id already exists!")
		return
	}

	fullName, ok := c.prompt("Enter the full name: ")
	if !ok {
		return
	}
	birth, ok := c.prompt("Enter the birth date (dd-mm-yyyy): ")
	if !ok {
		return
	}
	address, ok := c.prompt("Enter the address (street, number - district - city/state): ")
	if !ok {
		return
	}

	birthDate, err := time.Parse(inputDateLayout, birth)
	if err != nil {
		c.fail("Operation failed! Birth date must be dd-mm-yyyy.")
		return
	}

	response, err := c.clients.CreateClient(ctx, models.CreateClientRequest{
		NationalID: nationalID,
		FullName:   fullName,
		BirthDate:  birthDate.Format(models.DateLayout),
		Address:    address,
	})
	if err != nil {
		c.fail(failureText(response.Message, response.Errors))
		return
	}
	c.succeed("Client registered successfully!")
}

// findClient reads a national id and confirms the client exists.
func (c *Console) findClient(ctx context.Context, label string) (string, bool) {
	nationalID, ok := c.prompt(label)
	if !ok {
		return "", false
	}

	if _, err := c.clients.GetClient(ctx, nationalID); err != nil {
		c.fail("Client not found!")
		return "", false
	}
	return nationalID, true
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) succeed(message string) {
	fmt.Fprintf(c.out, "\n=== %s ===\n", message)
}

func (c *Console) fail(message string) {
	fmt.Fprintf(c.out, "\n@@@ %s @@@\n", message)
}

func failureText(message string, details []string) string {
	if len(details) == 0 {
		return "Operation failed! " + message + "."
	}
	return "Operation failed! " + message + ": " + strings.Join(details, "; ") + "."
}

// RenderStatement prints entries in recording order followed by the balance.
func RenderStatement(statement models.StatementResponse) string {
	var b strings.Builder

	b.WriteString("\n================ STATEMENT ================\n")
	if len(statement.Entries) == 0 {
		b.WriteString("No movements recorded.\n")
	}
	for _, entry := range statement.Entries {
		recordedAt := entry.RecordedAt
		if parsed, err := time.Parse(time.RFC3339, entry.RecordedAt); err == nil {
			recordedAt = parsed.Format(statementTimeLayout)
		}
		fmt.Fprintf(&b, "\n%s:\n\t%s at %s\n", entry.Kind, entry.Amount.StringFixed(2), recordedAt)
	}
	fmt.Fprintf(&b, "\nBalance:\n\t%s\n", statement.Balance.StringFixed(2))
	b.WriteString(separator + "\n")

	return b.String()
}

func RenderAccounts(accounts []models.AccountResponse) string {
	var b strings.Builder
	for _, account := range accounts {
		b.WriteString(strings.Repeat("=", 100) + "\n")
		fmt.Fprintf(&b, "Branch:\t\t%s\nAccount:\t%d\nHolder:\t\t%s\n", account.Branch, account.AccountNumber, account.HolderName)
	}
	return b.String()
}
