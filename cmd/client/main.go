// Command client is a small command-line front end for the notekeeper API.
//
// Usage:
//
//	client [flags] <command> [arguments]
//
// Commands:
//
//	register <full name> <email> <password>
//	login <email> <password>
//	whoami
//	add <title> <content> [tag ...]
//	edit <note id> [-title t] [-content c] [-pinned true|false]
//	list
//	pin <note id>
//	unpin <note id>
//	delete <note id>
//	search <query>
//
// Authenticated commands read the bearer token from the -token flag or the
// NOTEKEEPER_TOKEN environment variable. The register and login commands
// print the token they obtain so it can be exported for later calls.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/avolkhin/notekeeper/internal/client"
	"github.com/avolkhin/notekeeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	address := flag.String("a", "http://localhost:8080", "server base URL")
	token := flag.String("token", os.Getenv("NOTEKEEPER_TOKEN"), "bearer token for authenticated commands")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	showVersion := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *showVersion {
		printBuildInfo()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "no command given, see package documentation for usage")
		os.Exit(2)
	}

	api := client.NewClient(client.Config{BaseURL: *address, Timeout: *timeout})
	api.SetToken(*token)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := runCommand(ctx, api, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, api *client.Client, command string, args []string) error {
	switch command {
	case "register":
		if len(args) != 3 {
			return fmt.Errorf("usage: register <full name> <email> <password>")
		}
		user, err := api.Register(ctx, models.RegisterRequest{FullName: args[0], Email: args[1], Password: args[2]})
		if err != nil {
			return err
		}
		fmt.Printf("registered user %d (%s)\n", user.UserID, user.Email)
		fmt.Printf("token: %s\n", api.Token())
		return nil

	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: login <email> <password>")
		}
		accessToken, err := api.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		fmt.Printf("token: %s\n", accessToken)
		return nil

	case "whoami":
		user, err := api.GetUser(ctx)
		if err != nil {
			return err
		}
		return printJSON(user)

	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: add <title> <content> [tag ...]")
		}
		note, err := api.AddNote(ctx, models.CreateNoteRequest{
			Title:   args[0],
			Content: args[1],
			Tags:    args[2:],
		})
		if err != nil {
			return err
		}
		return printJSON(note)

	case "edit":
		return runEdit(ctx, api, args)

	case "list":
		notes, err := api.GetAllNotes(ctx)
		if err != nil {
			return err
		}
		return printJSON(notes)

	case "pin", "unpin":
		noteID, err := parseNoteID(args)
		if err != nil {
			return err
		}
		note, err := api.UpdateNotePinned(ctx, noteID, command == "pin")
		if err != nil {
			return err
		}
		return printJSON(note)

	case "delete":
		noteID, err := parseNoteID(args)
		if err != nil {
			return err
		}
		if err = api.DeleteNote(ctx, noteID); err != nil {
			return err
		}
		fmt.Printf("note %d deleted\n", noteID)
		return nil

	case "search":
		if len(args) != 1 {
			return fmt.Errorf("usage: search <query>")
		}
		notes, err := api.SearchNotes(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(notes)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runEdit(ctx context.Context, api *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: edit <note id> [-title t] [-content c] [-pinned true|false]")
	}

	noteID, err := parseNoteID(args[:1])
	if err != nil {
		return err
	}

	editFlags := flag.NewFlagSet("edit", flag.ContinueOnError)
	title := editFlags.String("title", "", "new title")
	content := editFlags.String("content", "", "new content")
	pinned := editFlags.String("pinned", "", "new pinned state (true or false)")
	if err = editFlags.Parse(args[1:]); err != nil {
		return err
	}

	// Only flags the user actually passed become part of the update.
	var req models.EditNoteRequest
	editFlags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			req.Title = title
		case "content":
			req.Content = content
		case "pinned":
			isPinned := *pinned == "true"
			req.IsPinned = &isPinned
		}
	})

	note, err := api.EditNote(ctx, noteID, req)
	if err != nil {
		return err
	}
	return printJSON(note)
}

func parseNoteID(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("note id is required")
	}
	noteID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", args[0])
	}
	return noteID, nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
