package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/maprojet/compte-client/internal/client"
	"github.com/maprojet/compte-client/internal/config"
	"github.com/maprojet/compte-client/internal/models"
	"github.com/maprojet/compte-client/internal/repository"
	"github.com/sirupsen/logrus"
)

const usage = `Usage: comptectl [flags] <command> [args]

Commands:
  list                         list all accounts
  get <id>                     fetch one account
  create <solde> <type>        create an account (type: COURANT or EPARGNE)
  update <id> <solde> <type>   replace an account
  delete <id>                  delete an account

Flags:
  -base-url URL   server base URL (default from BASE_URL env)
  -format FMT     wire format, JSON or XML (default from FORMAT env)
`

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.WarnLevel
	}
	logger.SetLevel(logLevel)

	cfg, err := config.NewConfig()
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}

	baseURL := flag.String("base-url", cfg.BaseURL, "server base URL")
	formatName := flag.String("format", cfg.Format, "wire format (JSON or XML)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	format, err := client.ParseFormat(*formatName)
	if err != nil {
		fatalf("%v", err)
	}

	factory := client.NewFactory(*baseURL, cfg.HTTPTimeout, logger)
	repo := repository.NewAccountRepository(factory, format, logger)
	ctx := context.Background()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "list":
		runList(ctx, repo)
	case "get":
		runGet(ctx, repo, rest)
	case "create":
		runCreate(ctx, repo, rest)
	case "update":
		runUpdate(ctx, repo, rest)
	case "delete":
		runDelete(ctx, repo, rest)
	default:
		fatalf("unknown command %q", cmd)
	}
}

func runList(ctx context.Context, repo *repository.AccountRepository) {
	accounts, err := repo.ListAll(ctx)
	if err != nil {
		fatalf("Failed to load accounts: %v", err)
	}
	for i := range accounts {
		printAccount(&accounts[i])
	}
}

func runGet(ctx context.Context, repo *repository.AccountRepository, args []string) {
	if len(args) != 1 {
		fatalf("get expects exactly one id argument")
	}
	id := parseID(args[0])
	account, err := repo.GetByID(ctx, id)
	if err != nil {
		fatalf("Failed to load account %d: %v", id, err)
	}
	printAccount(account)
}

func runCreate(ctx context.Context, repo *repository.AccountRepository, args []string) {
	if len(args) != 2 {
		fatalf("create expects <solde> <type>")
	}
	account := buildAccount(args[0], args[1])
	account.CreationDate = models.Today()
	created, err := repo.Create(ctx, account)
	if err != nil {
		fatalf("Failed to create account: %v", err)
	}
	printAccount(created)
}

func runUpdate(ctx context.Context, repo *repository.AccountRepository, args []string) {
	if len(args) != 3 {
		fatalf("update expects <id> <solde> <type>")
	}
	id := parseID(args[0])
	current, err := repo.GetByID(ctx, id)
	if err != nil {
		fatalf("Failed to load account %d: %v", id, err)
	}
	account := buildAccount(args[1], args[2])
	account.CreationDate = current.CreationDate
	updated, err := repo.Update(ctx, id, account)
	if err != nil {
		fatalf("Failed to update account %d: %v", id, err)
	}
	printAccount(updated)
}

func runDelete(ctx context.Context, repo *repository.AccountRepository, args []string) {
	if len(args) != 1 {
		fatalf("delete expects exactly one id argument")
	}
	id := parseID(args[0])
	if err := repo.Delete(ctx, id); err != nil {
		fatalf("Failed to delete account %d: %v", id, err)
	}
	fmt.Printf("account %d deleted\n", id)
}

// buildAccount validates the user-supplied balance and type before any
// network call is made; bad input never reaches the repository.
func buildAccount(balanceText, typeText string) *models.Account {
	balance, err := models.ParseBalance(balanceText)
	if err != nil {
		fatalf("%v", err)
	}
	accountType, err := models.ParseAccountType(typeText)
	if err != nil {
		fatalf("%v", err)
	}
	return &models.Account{Balance: balance, Type: accountType}
}

func parseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fatalf("invalid account id %q", s)
	}
	return id
}

func printAccount(a *models.Account) {
	fmt.Printf("id=%d solde=%.2f type=%s dateCreation=%s\n", *a.ID, a.Balance, a.Type, a.CreationDate)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
