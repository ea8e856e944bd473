package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/author-registry/internal/logger"
	"github.com/sbilibin2017/author-registry/internal/migrations"
	"github.com/sbilibin2017/author-registry/internal/passwords"
	"github.com/sbilibin2017/author-registry/internal/repositories"
	"github.com/sbilibin2017/author-registry/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

var errUsage = errors.New("usage")

// config holds everything read from the environment.
type config struct {
	LogLevel  string
	LogFormat string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
}

// DSN returns the PostgreSQL connection string.
func (c config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// command is one CLI invocation: a subcommand name and its positional arguments.
type command struct {
	name string
	args []string
}

// commandArity lists the positional arguments each subcommand takes.
var commandArity = map[string]int{
	"migrate":  0,
	"register": 4, // avatarUrl email password username
	"activate": 2, // id token
	"get":      1, // id
	"list":     0,
	"update":   3, // id field value
	"delete":   1, // id
}

func main() {
	printBuildInfo()
	configPath, args := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	cmd, err := parseCommand(args)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg, cmd, os.Stdout); err != nil {
		log.Fatalf("%s failed: %v", cmd.name, err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Fprintf(os.Stderr, "author-registry version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and the remaining arguments.
func parseFlags() (string, []string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c, flag.Args()
}

// parseConfig loads environment variables from a file and returns
// the logging and database configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Logging config
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_PORT: %w", err)
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "4")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "2")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_IDLE_CONNS: %w", err)
	}

	return cfg, nil
}

// parseCommand validates the subcommand name and its argument count.
func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, fmt.Errorf("%w: missing command (one of migrate, register, activate, get, list, update, delete)", errUsage)
	}

	name, rest := args[0], args[1:]
	arity, ok := commandArity[name]
	if !ok {
		return command{}, fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	if len(rest) != arity {
		return command{}, fmt.Errorf("%w: %s takes %d arguments, got %d", errUsage, name, arity, len(rest))
	}

	return command{name: name, args: rest}, nil
}

// run initializes the logger and database, then executes the command.
func run(ctx context.Context, cfg config, cmd command, out io.Writer) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	return execute(ctx, db, cmd, out)
}

// execute wires the repository and service on db and runs cmd, writing JSON to out.
func execute(ctx context.Context, db *sqlx.DB, cmd command, out io.Writer) error {
	repo := repositories.NewAuthorRepository(db, repositories.TxFromContext)
	svc := services.NewAuthorService(repo, repo, func(ctx context.Context, fn func(ctx context.Context) error) error {
		return repositories.InTx(ctx, db, fn)
	})

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	switch cmd.name {
	case "migrate":
		version, err := migrations.Up(ctx, db.DB)
		if err != nil {
			return err
		}
		return enc.Encode(map[string]int64{"version": version})

	case "register":
		hash, err := passwords.Hash(cmd.args[2])
		if err != nil {
			return err
		}
		author, err := svc.Register(ctx, cmd.args[0], cmd.args[1], hash, cmd.args[3])
		if err != nil {
			return err
		}
		return enc.Encode(author)

	case "activate":
		id, err := parseID(cmd.args[0])
		if err != nil {
			return err
		}
		if err := svc.Activate(ctx, id, cmd.args[1]); err != nil {
			return err
		}
		return enc.Encode(map[string]string{"authorId": id.String(), "status": "activated"})

	case "get":
		id, err := parseID(cmd.args[0])
		if err != nil {
			return err
		}
		author, err := svc.Get(ctx, id)
		if err != nil {
			return err
		}
		return enc.Encode(author)

	case "list":
		authors, err := svc.List(ctx)
		if err != nil {
			return err
		}
		return enc.Encode(authors)

	case "update":
		id, err := parseID(cmd.args[0])
		if err != nil {
			return err
		}
		change, err := profileChange(cmd.args[1], cmd.args[2])
		if err != nil {
			return err
		}
		author, err := svc.ChangeProfile(ctx, id, change)
		if err != nil {
			return err
		}
		return enc.Encode(author)

	case "delete":
		id, err := parseID(cmd.args[0])
		if err != nil {
			return err
		}
		if err := svc.Remove(ctx, id); err != nil {
			return err
		}
		return enc.Encode(map[string]string{"authorId": id.String(), "status": "deleted"})
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, cmd.name)
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid author id %q: %w", s, err)
	}
	return id, nil
}

// profileChange maps an update field name to a ProfileChange. Passwords are hashed here.
func profileChange(field, value string) (services.ProfileChange, error) {
	switch field {
	case "avatar":
		return services.ProfileChange{AvatarURL: &value}, nil
	case "email":
		return services.ProfileChange{Email: &value}, nil
	case "username":
		return services.ProfileChange{Username: &value}, nil
	case "password":
		hash, err := passwords.Hash(value)
		if err != nil {
			return services.ProfileChange{}, err
		}
		return services.ProfileChange{PasswordHash: &hash}, nil
	default:
		return services.ProfileChange{}, fmt.Errorf("%w: unknown field %q (one of avatar, email, username, password)", errUsage, field)
	}
}
