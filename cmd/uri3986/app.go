package main

//go:generate go tool errtrace -w .

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/urfave/cli/v3"

	"github.com/ghettovoice/rfc3986/encoded"
	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/log"
	"github.com/ghettovoice/rfc3986/internal/types"
	"github.com/ghettovoice/rfc3986/params"
	"github.com/ghettovoice/rfc3986/uri"
)

const configKey types.ContextKey = "config"

type config struct {
	charset   encoded.Charset
	form      bool
	normalize bool
	logger    *slog.Logger
}

func configFrom(ctx context.Context) *config {
	if c, ok := ctx.Value(configKey).(*config); ok {
		return c
	}
	return &config{charset: encoded.UTF8, logger: log.Noop}
}

func newApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "uri3986",
		Usage:  "RFC 3986 URI toolkit",
		Writer: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "charset",
				Value:   "UTF-8",
				Usage:   "charset of the plain text of encode, decode and params",
				Sources: cli.EnvVars("URI3986_CHARSET"),
			},
			&cli.BoolFlag{
				Name:  "form",
				Usage: "use the application/x-www-form-urlencoded rules in encode and decode",
			},
			&cli.BoolFlag{
				Name:  "normalize",
				Usage: "normalize the URIs printed by parse and resolve",
			},
			&cli.StringFlag{
				Name:    "log",
				Value:   log.KindNone,
				Usage:   "logger kind: console, dev or none",
				Sources: cli.EnvVars("URI3986_LOG"),
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "print the components of a URI reference",
				ArgsUsage: "<uri>",
				Action:    parseAction,
			},
			{
				Name:      "normalize",
				Usage:     "print the normalized form of a URI reference",
				ArgsUsage: "<uri>",
				Action:    normalizeAction,
			},
			{
				Name:      "resolve",
				Usage:     "resolve a reference against a base URI",
				ArgsUsage: "<base> <ref>",
				Action:    resolveAction,
			},
			{
				Name:      "encode",
				Usage:     "percent-encode plain text",
				ArgsUsage: "<text>",
				Action:    encodeAction,
			},
			{
				Name:      "decode",
				Usage:     "decode percent-encoded text",
				ArgsUsage: "<text>",
				Action:    decodeAction,
			},
			{
				Name:      "params",
				Usage:     "print the query parameters of a URI, or the values of one of them",
				ArgsUsage: "<uri> [name]",
				Action:    paramsAction,
			},
		},
	}
}

func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cs, err := encoded.LookupCharset(cmd.String("charset"))
	if err != nil {
		return ctx, errtrace.Wrap(err)
	}
	logger, err := log.New(cmd.String("log"), os.Stderr)
	if err != nil {
		return ctx, errtrace.Wrap(err)
	}
	return context.WithValue(ctx, configKey, &config{
		charset:   cs,
		form:      cmd.Bool("form"),
		normalize: cmd.Bool("normalize"),
		logger:    logger,
	}), nil
}

func args(cmd *cli.Command, least, most int) ([]string, error) {
	n := cmd.Args().Len()
	if n < least || n > most {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("%s expects %s", cmd.Name, cmd.ArgsUsage))
	}
	return cmd.Args().Slice(), nil
}

func output(cmd *cli.Command) io.Writer { return cmd.Root().Writer }

func printURI(w io.Writer, u types.Renderer) error {
	if _, err := u.RenderTo(w); err != nil {
		return errtrace.Wrap(err)
	}
	_, err := fmt.Fprintln(w)
	return errtrace.Wrap(err)
}

func parseURI(ctx context.Context, s string) (*uri.LazyURI, error) {
	logger := configFrom(ctx).logger
	u, err := uri.Parse(s)
	if err != nil {
		if off, ok := errorutil.Offset(err); ok && errorutil.IsGrammarErr(err) {
			logger.Debug("malformed URI", "input", s, "offset", off, "error", err)
		}
		return nil, errtrace.Wrap(err)
	}
	logger.Debug("URI parsed", "uri", u)
	return u, nil
}

func parseAction(ctx context.Context, cmd *cli.Command) error {
	a, err := args(cmd, 1, 1)
	if err != nil {
		return errtrace.Wrap(err)
	}
	var u uri.URI
	if u, err = parseURI(ctx, a[0]); err != nil {
		return errtrace.Wrap(err)
	}
	if configFrom(ctx).normalize {
		u = uri.Normalize(u)
	}

	w := output(cmd)
	field := func(name string, v any) { fmt.Fprintf(w, "%-10s %v\n", name+":", v) }
	if s, ok := u.Scheme().Get(); ok {
		field("scheme", s)
	}
	if auth, ok := u.Authority().Get(); ok {
		if ui, ok := auth.UserInfo().Get(); ok {
			field("userinfo", ui)
		}
		field("host", fmt.Sprintf("%s (%s)", auth.Host(), uri.ClassifyHost(auth.Host())))
		if p, ok := auth.Port().Get(); ok {
			field("port", p)
		}
	}
	field("path", uri.PathText(u.Path()))
	if q, ok := u.Query().Get(); ok {
		field("query", q)
	}
	if f, ok := u.Fragment().Get(); ok {
		field("fragment", f)
	}
	field("absolute", u.IsAbsolute())
	field("hierarchy", u.IsHierarchical())
	return nil
}

func normalizeAction(ctx context.Context, cmd *cli.Command) error {
	a, err := args(cmd, 1, 1)
	if err != nil {
		return errtrace.Wrap(err)
	}
	u, err := parseURI(ctx, a[0])
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(printURI(output(cmd), uri.Normalize(u)))
}

func resolveAction(ctx context.Context, cmd *cli.Command) error {
	a, err := args(cmd, 2, 2)
	if err != nil {
		return errtrace.Wrap(err)
	}
	base, err := parseURI(ctx, a[0])
	if err != nil {
		return errtrace.Wrap(err)
	}
	ref, err := parseURI(ctx, a[1])
	if err != nil {
		return errtrace.Wrap(err)
	}

	r := uri.Resolve(base, ref)
	cfg := configFrom(ctx)
	cfg.logger.Debug("reference resolved", "base", base, "ref", ref, "target", r)
	if cfg.normalize {
		return errtrace.Wrap(printURI(output(cmd), uri.Normalize(r)))
	}
	return errtrace.Wrap(printURI(output(cmd), r))
}

func encodeAction(ctx context.Context, cmd *cli.Command) error {
	a, err := args(cmd, 1, 1)
	if err != nil {
		return errtrace.Wrap(err)
	}
	cfg := configFrom(ctx)
	encode := encoded.EncodeString
	if cfg.form {
		encode = encoded.FormEncodeString
	}
	s, err := encode(a[0], cfg.charset)
	if err != nil {
		return errtrace.Wrap(err)
	}
	_, err = fmt.Fprintln(output(cmd), s)
	return errtrace.Wrap(err)
}

func decodeAction(ctx context.Context, cmd *cli.Command) error {
	a, err := args(cmd, 1, 1)
	if err != nil {
		return errtrace.Wrap(err)
	}
	cfg := configFrom(ctx)
	decode := encoded.DecodeString
	if cfg.form {
		decode = encoded.FormDecodeString
	}
	s, err := decode(a[0], cfg.charset)
	if err != nil {
		return errtrace.Wrap(err)
	}
	cfg.logger.Debug("text decoded", "input", log.StringValue(a[0]), "charset", cfg.charset.Name())
	_, err = fmt.Fprintln(output(cmd), s)
	return errtrace.Wrap(err)
}

func paramsAction(ctx context.Context, cmd *cli.Command) error {
	a, err := args(cmd, 1, 2)
	if err != nil {
		return errtrace.Wrap(err)
	}
	u, err := parseURI(ctx, a[0])
	if err != nil {
		return errtrace.Wrap(err)
	}
	var list params.List
	if q, ok := u.Query().Get(); ok {
		if list, err = params.PairsAs(q, configFrom(ctx).charset); err != nil {
			return errtrace.Wrap(err)
		}
	}

	w := output(cmd)
	if len(a) == 2 {
		vals, _ := params.All(list, params.Text(a[1]))
		for _, v := range vals {
			fmt.Fprintln(w, v)
		}
		return nil
	}
	for p := range list.All() {
		fmt.Fprintln(w, p)
	}
	return nil
}
