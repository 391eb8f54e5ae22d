package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"pwgen/internal/alphabet"
	"pwgen/internal/domain"
	"pwgen/internal/generator"
	"pwgen/internal/service"
	"pwgen/internal/target"
)

// Deps holds the collaborators Run needs.
type Deps struct {
	Registry target.Registry
	// NewBreachChecker is called once per run, and only with -pwned.
	NewBreachChecker func() service.BreachChecker
	Logger           *slog.Logger
	Version          string
}

// Run executes inv, writing passwords or listings to stdout.
func Run(ctx context.Context, inv Invocation, deps Deps, stdout io.Writer) error {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch {
	case inv.ShowHelp:
		Usage(stdout)
		return nil
	case inv.ShowVersion:
		fmt.Fprintf(stdout, "pwgen %s\n", deps.Version)
		return nil
	case inv.ListTargets:
		return listTargets(deps.Registry, stdout)
	}

	if inv.Length < domain.MinLength {
		return fmt.Errorf("%w: %d, need at least %d", domain.ErrLengthTooShort, inv.Length, domain.MinLength)
	}

	a, err := alphabet.Build(alphabet.Options{
		Base:    alphabet.DefaultBase(!inv.NoPunctuation),
		Target:  inv.Target,
		Exclude: inv.Exclude,
	}, deps.Registry)
	if err != nil {
		return err
	}
	logger.Debug("alphabet ready", "size", a.Len(), "target", inv.Target)

	opts := []service.Option{service.WithLogger(logger)}
	if inv.Pwned {
		if deps.NewBreachChecker == nil {
			return fmt.Errorf("%w: no breach checker configured", domain.ErrBreachService)
		}
		opts = append(opts, service.WithBreachChecker(deps.NewBreachChecker()))
	}
	svc := service.NewPasswordService(a, generator.New(a), opts...)

	for i := 0; i < inv.Count; i++ {
		pw, err := svc.Generate(ctx, inv.Length)
		if err != nil {
			return fmt.Errorf("password %d of %d: %w", i+1, inv.Count, err)
		}
		if _, err := fmt.Fprintln(stdout, pw); err != nil {
			return fmt.Errorf("writing password: %w", err)
		}
	}

	return nil
}

func listTargets(reg target.Registry, w io.Writer) error {
	for _, name := range reg.Names() {
		chars, _ := reg.Lookup(name)
		if _, err := fmt.Fprintf(w, "%s\t%s\n", name, chars); err != nil {
			return fmt.Errorf("writing targets: %w", err)
		}
	}
	return nil
}
