package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reldb/reldb"
	"github.com/reldb/reldb/core"
	"github.com/reldb/reldb/ps"
)

const (
	PromptColor  = "\033[36m" // Cyan
	ErrorColor   = "\033[31m" // Red
	SuccessColor = "\033[32m" // Green
	ResetColor   = "\033[0m"
	BoldColor    = "\033[1m"
)

// Version is set at build time via -ldflags
var Version = "dev"

// CLI holds the CLI state
type CLI struct {
	instance    *reldb.Instance
	identity    core.Identity
	remote      ps.RemoteConfig
	history     []string
	historyFile string
}

func main() {
	baseDir := flag.String("baseDir", "", "Base directory for snapshots (memory if empty)")
	sqlFile := flag.String("sqlFile", "", "SQL file to execute (non-interactive)")
	userName := flag.String("name", "RelDB", "Author name for snapshot commits")
	userEmail := flag.String("email", "cli@reldb.local", "Author email for snapshot commits")
	s3AccessKey := flag.String("s3AccessKey", "", "S3 access key for .push/.pull")
	s3SecretKey := flag.String("s3SecretKey", "", "S3 secret key for .push/.pull")
	s3Region := flag.String("s3Region", "", "S3 region for .push/.pull")
	s3Endpoint := flag.String("s3Endpoint", "", "Custom S3-compatible endpoint")
	flag.Parse()

	printBanner()

	var store *ps.Store
	var err error
	if *baseDir == "" {
		fmt.Printf("%sUsing memory store%s\n", SuccessColor, ResetColor)
		store, err = ps.NewMemoryStore()
	} else {
		fmt.Printf("%sUsing file store: %s%s\n", SuccessColor, *baseDir, ResetColor)
		store, err = ps.NewFileStore(*baseDir)
	}
	if err != nil {
		fmt.Printf("%sError: %v%s\n", ErrorColor, err, ResetColor)
		return
	}

	instance := reldb.Open(store)
	if err := instance.Load(); err == nil {
		fmt.Printf("%sLoaded latest snapshot%s\n", SuccessColor, ResetColor)
	}

	cli := &CLI{
		instance: instance,
		identity: core.Identity{Name: *userName, Email: *userEmail},
		remote: ps.RemoteConfig{
			AccessKey: *s3AccessKey,
			SecretKey: *s3SecretKey,
			Region:    *s3Region,
			Endpoint:  *s3Endpoint,
		},
		history:     make([]string, 0),
		historyFile: getHistoryPath(),
	}

	cli.loadHistory()

	if *sqlFile != "" {
		if err := cli.importFile(*sqlFile); err != nil {
			fmt.Printf("%sError importing file: %v%s\n", ErrorColor, err, ResetColor)
			os.Exit(1)
		}
		return
	}

	cli.run()
}

func printBanner() {
	fmt.Println()
	bannerWidth := 39 // inner width of the banner box
	versionLine := fmt.Sprintf("RelDB v%s", Version)
	padding := bannerWidth - len(versionLine) - 2 // -2 for "  " margins
	if padding < 0 {
		padding = 0
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	fmt.Printf("%s%s╔═══════════════════════════════════════╗%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Printf("%s%s║ %*s%s%*s ║%s\n", BoldColor, PromptColor, leftPad, "", versionLine, rightPad, "", ResetColor)
	fmt.Printf("%s%s║   In-Memory Relational Engine         ║%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Printf("%s%s╚═══════════════════════════════════════╝%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Println()
	fmt.Println("Type .help for commands, .quit to exit")
	fmt.Println()
}

func (cli *CLI) run() {
	reader := bufio.NewReader(os.Stdin)
	var multiLineBuffer strings.Builder

	for {
		prompt := cli.getPrompt(multiLineBuffer.Len() > 0)
		fmt.Print(prompt)

		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Printf("\n%sGoodbye!%s\n", SuccessColor, ResetColor)
			cli.saveHistory()
			return
		}

		input = strings.TrimSuffix(input, "\n")
		input = strings.TrimSuffix(input, "\r")

		if strings.TrimSpace(input) == "" {
			continue
		}

		// Dot commands only apply outside a multi-line statement
		if multiLineBuffer.Len() == 0 && strings.HasPrefix(input, ".") {
			if cli.handleCommand(input) {
				continue
			}
		}

		// Multi-line support: accumulate until we see a semicolon
		multiLineBuffer.WriteString(input)

		trimmed := strings.TrimSpace(multiLineBuffer.String())
		if !strings.HasSuffix(trimmed, ";") {
			multiLineBuffer.WriteString(" ")
			continue
		}

		statement := strings.TrimSuffix(trimmed, ";")
		multiLineBuffer.Reset()

		if strings.TrimSpace(statement) == "" {
			continue
		}

		cli.addToHistory(statement + ";")

		result := cli.instance.Engine().Execute(statement)
		if !result.OK() {
			fmt.Printf("%s✗ Error: %s%s\n", ErrorColor, result.Error, ResetColor)
		} else {
			result.Display()
		}
	}
}

func (cli *CLI) getPrompt(multiLine bool) string {
	if multiLine {
		return fmt.Sprintf("%s  ...>%s ", PromptColor, ResetColor)
	}
	return fmt.Sprintf("%sreldb>%s ", PromptColor, ResetColor)
}

func (cli *CLI) handleCommand(input string) bool {
	parts := strings.Fields(strings.TrimSpace(input))
	if len(parts) == 0 {
		return true
	}

	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit", ".q":
		fmt.Printf("%sGoodbye!%s\n", SuccessColor, ResetColor)
		cli.saveHistory()
		os.Exit(0)

	case ".help", ".h", ".?":
		cli.printHelp()

	case ".tables":
		cli.instance.Engine().Execute("SHOW TABLES").Display()

	case ".save":
		message := "snapshot"
		if len(parts) > 1 {
			message = strings.Join(parts[1:], " ")
		}
		version, err := cli.instance.Save(cli.identity, message)
		if err != nil {
			fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		} else {
			fmt.Printf("%s✓ Saved %s%s\n", SuccessColor, version.Id, ResetColor)
		}

	case ".load":
		var err error
		if len(parts) > 1 {
			err = cli.instance.LoadAt(parts[1])
		} else {
			err = cli.instance.Load()
		}
		if err != nil {
			fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		} else {
			fmt.Printf("%s✓ Snapshot loaded%s\n", SuccessColor, ResetColor)
		}

	case ".versions":
		cli.printVersions()

	case ".push":
		if len(parts) < 2 {
			fmt.Printf("%s✗ Usage: .push <url>%s\n", ErrorColor, ResetColor)
			break
		}
		if err := cli.instance.Store().Push(context.Background(), parts[1], &cli.remote); err != nil {
			fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		} else {
			fmt.Printf("%s✓ Pushed to %s%s\n", SuccessColor, parts[1], ResetColor)
		}

	case ".pull":
		if len(parts) < 2 {
			fmt.Printf("%s✗ Usage: .pull <url>%s\n", ErrorColor, ResetColor)
			break
		}
		_, err := cli.instance.Store().Fetch(context.Background(), parts[1], &cli.remote, cli.identity)
		if err != nil {
			fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
			break
		}
		if err := cli.instance.Load(); err != nil {
			fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		} else {
			fmt.Printf("%s✓ Pulled from %s%s\n", SuccessColor, parts[1], ResetColor)
		}

	case ".import":
		if len(parts) > 1 {
			if err := cli.importFile(parts[1]); err != nil {
				fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
			}
		} else {
			fmt.Printf("%s✗ Usage: .import <file.sql>%s\n", ErrorColor, ResetColor)
		}

	case ".clear", ".cls":
		fmt.Print("\033[H\033[2J")

	case ".history":
		cli.printHistory()

	case ".version":
		fmt.Printf("RelDB version %s\n", Version)

	default:
		fmt.Printf("%s✗ Unknown command: %s (type .help for commands)%s\n", ErrorColor, parts[0], ResetColor)
	}

	return true
}

func (cli *CLI) printHelp() {
	fmt.Println()
	fmt.Printf("%s%sSpecial Commands:%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Println("  .help, .h        Show this help message")
	fmt.Println("  .quit, .exit     Exit the CLI")
	fmt.Println("  .tables          List all tables")
	fmt.Println("  .save [message]  Save a snapshot")
	fmt.Println("  .load [version]  Load the latest (or a past) snapshot")
	fmt.Println("  .versions        List saved snapshot versions")
	fmt.Println("  .push <url>      Push the latest snapshot to a remote")
	fmt.Println("  .pull <url>      Fetch a snapshot from a remote and load it")
	fmt.Println("  .import <file>   Execute statements from a file")
	fmt.Println("  .history         Show command history")
	fmt.Println("  .clear           Clear the screen")
	fmt.Println("  .version         Show version info")
	fmt.Println()
	fmt.Printf("%s%sSQL Commands:%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Println("  CREATE TABLE <table> (<column> <type> [PRIMARY|UNIQUE], ...);")
	fmt.Println("  DROP TABLE <table>;")
	fmt.Println("  SHOW TABLES;")
	fmt.Println("  DESCRIBE <table>;")
	fmt.Println("  INSERT INTO <table> VALUES (<vals>);")
	fmt.Println("  SELECT <cols> FROM <table> [WHERE <col> <op> <val>];")
	fmt.Println("  UPDATE <table> SET <col>=<val> [WHERE ...];")
	fmt.Println("  DELETE FROM <table> [WHERE ...];")
	fmt.Println()
	fmt.Printf("%s%sTypes:%s INT, TEXT, REAL, BOOLEAN\n", BoldColor, PromptColor, ResetColor)
	fmt.Printf("%s%sOperators:%s =, !=, <>, <, <=, >, >=\n", BoldColor, PromptColor, ResetColor)
	fmt.Println()
}

func (cli *CLI) printVersions() {
	versions, err := cli.instance.Store().Versions()
	if err != nil {
		fmt.Printf("%s✗ Error: %v%s\n", ErrorColor, err, ResetColor)
		return
	}
	if len(versions) == 0 {
		fmt.Println("No saved versions")
		return
	}
	for _, v := range versions {
		message := strings.TrimSpace(v.Message)
		fmt.Printf("  %s  %s  %s  %s\n", v.Id[:8], v.Time.Format("2006-01-02 15:04:05"), v.Author, message)
	}
}

func (cli *CLI) addToHistory(cmd string) {
	// Don't add duplicates of the last command
	if len(cli.history) > 0 && cli.history[len(cli.history)-1] == cmd {
		return
	}
	cli.history = append(cli.history, cmd)

	if len(cli.history) > 1000 {
		cli.history = cli.history[len(cli.history)-1000:]
	}
}

func (cli *CLI) printHistory() {
	if len(cli.history) == 0 {
		fmt.Println("No command history")
		return
	}

	start := 0
	if len(cli.history) > 20 {
		start = len(cli.history) - 20
	}

	for i := start; i < len(cli.history); i++ {
		fmt.Printf("  %3d  %s\n", i+1, cli.history[i])
	}
}

func getHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reldb_history")
}

func (cli *CLI) loadHistory() {
	if cli.historyFile == "" {
		return
	}

	file, err := os.Open(cli.historyFile)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		cli.history = append(cli.history, scanner.Text())
	}
}

func (cli *CLI) saveHistory() {
	if cli.historyFile == "" {
		return
	}

	file, err := os.Create(cli.historyFile)
	if err != nil {
		return
	}
	defer file.Close()

	start := 0
	if len(cli.history) > 1000 {
		start = len(cli.history) - 1000
	}

	for i := start; i < len(cli.history); i++ {
		_, _ = file.WriteString(cli.history[i] + "\n")
	}
}

// importFile reads and executes statements from a file
func (cli *CLI) importFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	statements := splitStatements(string(data))

	successCount := 0
	errorCount := 0

	for i, statement := range statements {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}

		result := cli.instance.Engine().Execute(statement)
		if !result.OK() {
			fmt.Printf("%s[%d] ✗ %s%s\n", ErrorColor, i+1, truncate(statement, 50), ResetColor)
			fmt.Printf("      Error: %s\n", result.Error)
			errorCount++
			continue
		}

		successCount++
		if result.Columns != nil {
			fmt.Printf("%s[%d] ✓ %s (%d rows)%s\n", SuccessColor, i+1, truncate(statement, 50), result.Count, ResetColor)
		} else {
			fmt.Printf("%s[%d] ✓ %s%s\n", SuccessColor, i+1, truncate(statement, 50), ResetColor)
		}
	}

	fmt.Printf("\n%s✓ Import complete: %d succeeded, %d failed%s\n",
		SuccessColor, successCount, errorCount, ResetColor)

	return nil
}

// splitStatements splits file content into individual statements
func splitStatements(content string) []string {
	var statements []string
	var current strings.Builder
	inString := false
	stringChar := byte(0)

	for i := 0; i < len(content); i++ {
		ch := content[i]

		// Handle string literals
		if (ch == '\'' || ch == '"') && (i == 0 || content[i-1] != '\\') {
			if !inString {
				inString = true
				stringChar = ch
			} else if ch == stringChar {
				inString = false
			}
		}

		// Handle comments
		if !inString && ch == '-' && i+1 < len(content) && content[i+1] == '-' {
			for i < len(content) && content[i] != '\n' {
				i++
			}
			continue
		}

		// Statement separator
		if !inString && ch == ';' {
			statement := strings.TrimSpace(current.String())
			if statement != "" {
				statements = append(statements, statement)
			}
			current.Reset()
			continue
		}

		current.WriteByte(ch)
	}

	statement := strings.TrimSpace(current.String())
	if statement != "" {
		statements = append(statements, statement)
	}

	return statements
}

// truncate shortens a string to max length with ellipsis
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
