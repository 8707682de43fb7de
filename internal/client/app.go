package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/go-lost-found/internal/adapter"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, fs *flag.FlagSet, args []string) (any, error)
}

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	// token is used when a command gets no -token flag.
	token string

	commands map[string]command
	logger   *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, token string, out io.Writer, logger *logger.Logger) *App {
	a := &App{adapter: serverAdapter, out: out, token: token, logger: logger}

	a.commands = map[string]command{
		"signup":   {usage: "create an account", run: a.signup},
		"signin":   {usage: "sign in and print the token", run: a.signin},
		"signout":  {usage: "sign out", run: a.signout},
		"profile":  {usage: "show the signed-in account", run: a.profile},
		"update":   {usage: "update profile fields of a user account", run: a.update},
		"users":    {usage: "list all accounts (admin)", run: a.users},
		"report":   {usage: "report a lost or found item; image paths follow the flags", run: a.report},
		"items":    {usage: "list reported items", run: a.items},
		"addnotes": {usage: "publish a notes entry (admin)", run: a.addNotes},
		"notes":    {usage: "list notes", run: a.notes},
		"version":  {usage: "print the server version", run: a.version},
	}

	return a
}

// Run executes args[0] with the remaining arguments as its flags.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)

	a.logger.Debug().Str("command", name).Msg("running command")

	res, err := cmd.run(ctx, fs, args[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.print(res)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: lost-found-client <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %-9s %s\n", name, a.commands[name].usage)
	}
}

func roleFlag(fs *flag.FlagSet) *bool {
	return fs.Bool("admin", false, "use the admin endpoints")
}

func role(admin bool) models.Role {
	if admin {
		return models.RoleAdmin
	}
	return models.RoleUser
}

// tokenFlag registers -token and returns a function that applies it to the
// adapter after parsing.
func (a *App) tokenFlag(fs *flag.FlagSet) func() error {
	token := fs.String("token", a.token, "access token")
	return func() error {
		if strings.TrimSpace(*token) == "" {
			return ErrMissingToken
		}
		a.adapter.SetToken(*token)
		return nil
	}
}

func (a *App) signup(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	admin := roleFlag(fs)
	var req models.SignupRequest
	fs.StringVar(&req.Name, "name", "", "full name")
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return a.adapter.Signup(ctx, role(*admin), req)
}

func (a *App) signin(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	admin := roleFlag(fs)
	var req models.SigninRequest
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return a.adapter.Signin(ctx, role(*admin), req)
}

func (a *App) signout(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	admin := roleFlag(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return a.adapter.Signout(ctx, role(*admin))
}

func (a *App) profile(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	admin := roleFlag(fs)
	applyToken := a.tokenFlag(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := applyToken(); err != nil {
		return nil, err
	}

	return a.adapter.Profile(ctx, role(*admin))
}

// update sends only the flags that were given on the command line.
func (a *App) update(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	applyToken := a.tokenFlag(fs)
	fields := map[string]*string{
		"name":     fs.String("name", "", "full name"),
		"username": fs.String("username", "", "username"),
		"email":    fs.String("email", "", "email"),
		"gender":   fs.String("gender", "", "gender"),
		"contact":  fs.String("contact", "", "contact phone"),
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := applyToken(); err != nil {
		return nil, err
	}

	var update models.UserUpdate
	fs.Visit(func(f *flag.Flag) {
		v, ok := fields[f.Name]
		if !ok {
			return
		}
		switch f.Name {
		case "name":
			update.Name = v
		case "username":
			update.Username = v
		case "email":
			update.Email = v
		case "gender":
			update.Gender = v
		case "contact":
			update.Contact = v
		}
	})

	return a.adapter.UpdateProfile(ctx, update)
}

func (a *App) users(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	applyToken := a.tokenFlag(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := applyToken(); err != nil {
		return nil, err
	}

	return a.adapter.ListUsers(ctx)
}

func (a *App) report(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	applyToken := a.tokenFlag(fs)
	var item models.NewItem
	var itemType string
	fs.StringVar(&item.ItemName, "name", "", "item name")
	fs.StringVar(&item.Description, "description", "", "description")
	fs.StringVar(&itemType, "type", "", "lost or found")
	fs.StringVar(&item.Question, "question", "", "question only the owner can answer")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := applyToken(); err != nil {
		return nil, err
	}
	item.ItemType = models.ItemType(itemType)

	images, closeAll, err := openFiles(fs.Args())
	if err != nil {
		return nil, err
	}
	defer closeAll()

	return a.adapter.ReportItem(ctx, item, images...)
}

func (a *App) items(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	applyToken := a.tokenFlag(fs)
	var itemType, status string
	fs.StringVar(&itemType, "type", "", "filter by type")
	fs.StringVar(&status, "status", "", "filter by status")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := applyToken(); err != nil {
		return nil, err
	}

	return a.adapter.ListItems(ctx, models.ItemFilter{
		Type:   models.ItemType(itemType),
		Status: models.ItemStatus(status),
	})
}

func (a *App) addNotes(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	applyToken := a.tokenFlag(fs)
	var notes models.NewNotes
	var imagePath string
	fs.StringVar(&notes.Title, "title", "", "title")
	fs.StringVar(&notes.Link, "link", "", "link to the notes")
	fs.StringVar(&imagePath, "image", "", "path of an image")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := applyToken(); err != nil {
		return nil, err
	}

	var image *adapter.File
	if imagePath != "" {
		files, closeAll, err := openFiles([]string{imagePath})
		if err != nil {
			return nil, err
		}
		defer closeAll()
		image = &files[0]
	}

	return a.adapter.AddNotes(ctx, notes, image)
}

func (a *App) notes(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	applyToken := a.tokenFlag(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := applyToken(); err != nil {
		return nil, err
	}

	return a.adapter.ListNotes(ctx)
}

func (a *App) version(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		return nil, err
	}
	return models.VersionResponse{Version: v}, nil
}

func openFiles(paths []string) ([]adapter.File, func(), error) {
	files := make([]adapter.File, 0, len(paths))
	opened := make([]*os.File, 0, len(paths))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open image: %w", err)
		}
		opened = append(opened, f)
		files = append(files, adapter.File{Name: filepath.Base(p), Body: f})
	}

	return files, closeAll, nil
}
