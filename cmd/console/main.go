package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"text/tabwriter"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/xavierca1/crm-console/internal/api"
	"github.com/xavierca1/crm-console/internal/config"
	"github.com/xavierca1/crm-console/internal/console"
	"github.com/xavierca1/crm-console/internal/query"
	"github.com/xavierca1/crm-console/internal/session"
	"github.com/xavierca1/crm-console/internal/store"
)

type app struct {
	cfg    *config.Config
	client *api.Client
	creds  *session.Store
	auth   *store.AuthStore
	leads  *store.LeadStore
}

func newApp(configPath string) (*app, error) {
	cfg := config.Default()
	if err := config.Load(configPath, cfg); err != nil {
		return nil, err
	}

	creds, err := session.NewStore(cfg.StateDir)
	if err != nil {
		return nil, err
	}
	auth, err := store.NewAuthStore(creds)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), auth)
	return &app{
		cfg:    cfg,
		client: client,
		creds:  creds,
		auth:   auth,
		leads:  store.NewLeadStore(client),
	}, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	a, err := newApp(cmd.String("config"))
	if err != nil {
		return err
	}

	srv := console.NewServer(a.cfg, a.client, a.auth, a.leads)

	// Propagate a logout performed by another console process.
	go func() {
		if err := a.creds.Watch(ctx, a.auth.Forget); err != nil {
			log.Printf("⚠️ session watcher: %v", err)
		}
	}()

	log.Printf("🔥 CRM console on %s (backend %s)", a.cfg.Console.Listen, a.cfg.Backend.BaseURL)
	return http.ListenAndServe(a.cfg.Console.Listen, srv.Router())
}

func runLogin(ctx context.Context, cmd *cli.Command) error {
	a, err := newApp(cmd.String("config"))
	if err != nil {
		return err
	}

	sess, err := a.client.Login(ctx, cmd.String("email"), cmd.String("password"))
	if err != nil {
		return fmt.Errorf("login failed: %s", api.Message(err))
	}
	if err := a.auth.SetAuth(sess.Token, sess.User); err != nil {
		return err
	}

	who := cmd.String("email")
	if sess.User != nil && sess.User.Name != "" {
		who = sess.User.Name
	}
	fmt.Printf("✅ Logged in as %s\n", who)
	return nil
}

func runLogout(ctx context.Context, cmd *cli.Command) error {
	a, err := newApp(cmd.String("config"))
	if err != nil {
		return err
	}
	if err := a.auth.ClearAuth(); err != nil {
		return err
	}
	fmt.Println("✅ Logged out")
	return nil
}

func runLeads(ctx context.Context, cmd *cli.Command) error {
	a, err := newApp(cmd.String("config"))
	if err != nil {
		return err
	}

	filter := query.LeadFilter{
		Name:        cmd.String("name"),
		Stage:       cmd.String("stage"),
		Source:      cmd.String("source"),
		CreatedFrom: cmd.String("from"),
		CreatedTo:   cmd.String("to"),
	}
	leads, err := a.leads.Fetch(ctx, filter.Params())
	if err != nil {
		return fmt.Errorf("fetch leads: %s", api.Message(err))
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTAGE\tSOURCE\tSCORE\tEMAIL\tPHONE")
	for _, l := range leads {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", l.Name, l.Stage, l.Source, l.Score, l.Email, l.Phone)
	}
	return tw.Flush()
}

func runFollowups(ctx context.Context, cmd *cli.Command) error {
	a, err := newApp(cmd.String("config"))
	if err != nil {
		return err
	}

	followups, err := a.client.TodayFollowups(ctx)
	if err != nil {
		return fmt.Errorf("fetch followups: %s", api.Message(err))
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tLEAD\tREASON\tSTATUS")
	for _, f := range followups {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Date.Format("15:04"), f.Lead.Name, f.Reason, f.Status)
	}
	return tw.Flush()
}

func main() {
	cmd := &cli.Command{
		Name:   "console",
		Usage:  "Local admin console for the CRM backend: leads, appointments, reports",
		Action: runServe,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   "config/config.yaml",
				Sources: cli.EnvVars("CRM_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the dashboard on the local listener",
				Action: runServe,
			},
			{
				Name:  "login",
				Usage: "Authenticate against the backend and persist the session",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: runLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the persisted session",
				Action: runLogout,
			},
			{
				Name:  "leads",
				Usage: "List leads with optional filters",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "stage"},
					&cli.StringFlag{Name: "source"},
					&cli.StringFlag{Name: "from", Usage: "createdFrom date (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "to", Usage: "createdTo date (YYYY-MM-DD)"},
				},
				Action: runLeads,
			},
			{
				Name:   "followups",
				Usage:  "Show today's follow-ups",
				Action: runFollowups,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
