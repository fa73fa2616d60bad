package client

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-phonebook/internal/search"
	"github.com/MKhiriev/go-phonebook/models"
	"github.com/spf13/cobra"
)

func (a *App) newListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List the directory grouped by initial letter",
		Long:  "list fetches all contacts, marks those saved on this device and prints them in alphabetical sections. An optional query filters by name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.runtime.Services.DirectoryService.Load(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), opts.Format).printDirectory(view)
		},
	}
}

func (a *App) newShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contact, err := a.runtime.Services.ContactService.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), opts.Format).printContact(contact)
		},
	}
}

const searchHelp = `type a query to filter, an empty line to search,
:N to reuse history entry N, :rm N to forget it, :clear to forget all,
:c to clear the query, :r to refresh, :h for history, :q to quit`

func (a *App) newSearchCommand(opts *RootOptions) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search contacts by name and remember recent searches",
		Long: "search filters the directory by a case-insensitive name query and records it in the recent searches.\n" +
			"With --interactive every input line updates the query; a query left untouched for the debounce period is recorded automatically.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := newPrinter(cmd.OutOrStdout(), opts.Format)

			session := a.newSession(ctx)
			defer session.Close()

			contacts, err := a.runtime.Services.DirectoryService.Fetch(ctx)
			if err != nil {
				return err
			}

			if interactive {
				return a.searchLoop(cmd, p, session, contacts)
			}

			query := strings.Join(args, " ")
			if strings.TrimSpace(query) == "" {
				session.Focus()
				if session.ShowHistoryPanel() {
					if err = p.printHistory(session.History()); err != nil {
						return err
					}
				}
			} else {
				session.SetQuery(query)
				session.Submit()
			}

			return p.printDirectory(a.runtime.Services.DirectoryService.View(contacts, session.Query()))
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read queries from standard input")

	return cmd
}

func (a *App) newSession(ctx context.Context) *search.Session {
	return search.NewSession(ctx, a.runtime.Services.HistoryService, a.runtime.Search.Debounce, a.logger)
}

func (a *App) searchLoop(cmd *cobra.Command, p *printer, session *search.Session, contacts []models.Contact) error {
	ctx := cmd.Context()
	directory := a.runtime.Services.DirectoryService

	render := func() error {
		if session.ShowHistoryPanel() {
			if err := p.printHistory(session.History()); err != nil {
				return err
			}
		}
		return p.printDirectory(directory.View(contacts, session.Query()))
	}

	if !p.json() {
		p.line("%s", p.faint.Render(searchHelp))
	}

	session.Focus()
	if err := render(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if !p.json() {
			fmt.Fprint(p.w, "> ")
		}
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == ":q":
			return nil
		case trimmed == ":h":
			if err := p.printHistory(session.History()); err != nil {
				return err
			}
			continue
		case trimmed == ":clear":
			session.ClearHistory()
		case trimmed == ":c":
			session.SetQuery("")
			session.Focus()
		case trimmed == ":r":
			fresh, err := directory.Fetch(ctx)
			if err != nil {
				p.line("%s", p.warn.Render(UserMessage(err)))
				continue
			}
			contacts = fresh
		case strings.HasPrefix(trimmed, ":rm "):
			entry, err := historyEntry(session.History(), strings.TrimSpace(strings.TrimPrefix(trimmed, ":rm ")))
			if err != nil {
				p.line("%s", p.warn.Render(err.Error()))
				continue
			}
			session.RemoveEntry(entry)
		case strings.HasPrefix(trimmed, ":"):
			entry, err := historyEntry(session.History(), strings.TrimPrefix(trimmed, ":"))
			if err != nil {
				p.line("%s", p.warn.Render(err.Error()))
				continue
			}
			session.SelectHistory(entry)
		case trimmed == "":
			session.Submit()
		default:
			session.SetQuery(line)
		}

		if err := render(); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read search input: %w", err)
	}

	return nil
}

// historyEntry resolves a 1-based position in history.
func historyEntry(history []string, ref string) (string, error) {
	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 || n > len(history) {
		return "", fmt.Errorf("%w: %q", ErrUnknownHistoryEntry, ref)
	}
	return history[n-1], nil
}
