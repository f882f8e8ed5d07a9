// cmd/bankcli/main.go
//
// bankcli is the interactive text shell over the in-process ledger. All text
// I/O and input parsing lives here; every ledger operation may fail, and a
// failure just prints its reason and returns to the menu.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"go-bank-ledger/ledger"
	"go-bank-ledger/logger"
	"go-bank-ledger/service"
)

func main() {
	logger.Init()
	// Keep routine operation logs out of the menu flow.
	logger.Log.SetLevel(logrus.WarnLevel)

	svc := service.NewLedgerService(ledger.New())
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\n********************")
		fmt.Println("1 - Create account")
		fmt.Println("2 - Check balance")
		fmt.Println("3 - Withdraw")
		fmt.Println("4 - Deposit")
		fmt.Println("5 - List accounts")
		fmt.Println("6 - Transfer between accounts")
		fmt.Println("7 - Show account history")
		fmt.Println("8 - Apply interest and fees")
		fmt.Println("9 - Quit")
		fmt.Print("Select an option: ")

		line, ok := readLine(in)
		if !ok {
			return
		}
		if line == "" {
			continue
		}

		switch line {
		case "1":
			createAccountFlow(in, svc)
		case "2":
			balanceFlow(in, svc)
		case "3":
			withdrawFlow(in, svc)
		case "4":
			depositFlow(in, svc)
		case "5":
			listFlow(svc)
		case "6":
			transferFlow(in, svc)
		case "7":
			historyFlow(in, svc)
		case "8":
			interestAndFeesFlow(in, svc)
		case "9":
			fmt.Println("Bye.")
			return
		default:
			fmt.Println("Invalid option.")
		}
	}
}

func readLine(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func promptFloat(in *bufio.Scanner, prompt string) (float64, bool) {
	fmt.Print(prompt)
	line, ok := readLine(in)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Println("Invalid number.")
		return 0, false
	}
	return v, true
}

func promptAccountID(in *bufio.Scanner, prompt string) (int64, bool) {
	fmt.Print(prompt)
	line, ok := readLine(in)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		fmt.Println("Invalid account ID.")
		return 0, false
	}
	return id, true
}

func createAccountFlow(in *bufio.Scanner, svc *service.LedgerService) {
	fmt.Print("Owner name: ")
	owner, ok := readLine(in)
	if !ok {
		return
	}

	fmt.Print("Kind (1=Checking, 2=Savings): ")
	kindChoice, ok := readLine(in)
	if !ok {
		return
	}
	kind := "CHECKING"
	if kindChoice == "2" {
		kind = "SAVINGS"
	}

	initial, ok := promptFloat(in, "Initial balance: ")
	if !ok {
		return
	}

	account, err := svc.CreateAccount(owner, kind, initial)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Account created: ID:%d - %s (%s) - Balance: %s\n",
		account.ID, account.Owner, account.Kind, account.Balance)
}

func balanceFlow(in *bufio.Scanner, svc *service.LedgerService) {
	id, ok := promptAccountID(in, "Account ID: ")
	if !ok {
		return
	}
	balance, err := svc.Balance(id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Balance:", balance)
}

func withdrawFlow(in *bufio.Scanner, svc *service.LedgerService) {
	id, ok := promptAccountID(in, "Account ID: ")
	if !ok {
		return
	}
	amount, ok := promptFloat(in, "Amount to withdraw: ")
	if !ok {
		return
	}
	account, err := svc.Withdraw(id, amount)
	if err != nil {
		fmt.Println("Withdrawal failed:", err)
		return
	}
	fmt.Println("Withdrawal successful. New balance:", account.Balance)
}

func depositFlow(in *bufio.Scanner, svc *service.LedgerService) {
	id, ok := promptAccountID(in, "Account ID: ")
	if !ok {
		return
	}
	amount, ok := promptFloat(in, "Amount to deposit: ")
	if !ok {
		return
	}
	account, err := svc.Deposit(id, amount)
	if err != nil {
		fmt.Println("Deposit failed:", err)
		return
	}
	fmt.Println("Deposit successful. New balance:", account.Balance)
}

func listFlow(svc *service.LedgerService) {
	accounts := svc.ListAccounts()
	if len(accounts) == 0 {
		fmt.Println("No accounts.")
		return
	}
	for _, a := range accounts {
		fmt.Printf("ID:%d - %s (%s) - Balance: %s\n", a.ID, a.Owner, a.Kind, a.Balance)
	}
}

func transferFlow(in *bufio.Scanner, svc *service.LedgerService) {
	fromID, ok := promptAccountID(in, "Source account ID: ")
	if !ok {
		return
	}
	toID, ok := promptAccountID(in, "Destination account ID: ")
	if !ok {
		return
	}
	amount, ok := promptFloat(in, "Amount to transfer: ")
	if !ok {
		return
	}
	if err := svc.Transfer(fromID, toID, amount); err != nil {
		fmt.Println("Transfer failed:", err)
		return
	}
	fmt.Println("Transfer completed successfully.")
}

func historyFlow(in *bufio.Scanner, svc *service.LedgerService) {
	id, ok := promptAccountID(in, "Account ID: ")
	if !ok {
		return
	}
	history, err := svc.History(id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("=== History for account %d ===\n", id)
	for _, tx := range history {
		fmt.Printf("[%s] %-12s Amount: %s | Balance: %s\n",
			tx.CreatedAt.Format("2006-01-02 15:04:05"), tx.Kind, tx.Amount, tx.ResultingBalance)
	}
}

func interestAndFeesFlow(in *bufio.Scanner, svc *service.LedgerService) {
	rate, ok := promptFloat(in, "Interest rate for savings (e.g. 0.05): ")
	if !ok {
		return
	}
	fee, ok := promptFloat(in, "Monthly fee for checking accounts: ")
	if !ok {
		return
	}
	report, err := svc.ApplyInterestAndFees(rate, fee)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Applied to %d accounts.\n", report.Applied)
	for _, f := range report.Failures {
		fmt.Printf("Could not apply to account %d: %s\n", f.AccountID, f.Reason)
	}
}
