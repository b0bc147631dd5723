package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	apperrors "github.com/kbukum/gomonzo/errors"
	"github.com/kbukum/gomonzo/money"
	"github.com/kbukum/gomonzo/monzo"
	"github.com/kbukum/gomonzo/validation"
)

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func runBalance(ctx context.Context, client *monzo.Client, args []string, out io.Writer) error {
	fs := newFlagSet("balance", out)
	account := fs.String("account", "", "account id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := validation.New()
	v.Required("account", *account)
	if err := v.Validate(); err != nil {
		return err
	}

	bal, err := client.Balance(*account).Send(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "balance:        %s\ntotal balance:  %s\nspent today:    %s\n",
		money.Format(bal.Balance(), bal.Currency()),
		money.Format(bal.TotalBalance(), bal.Currency()),
		money.Format(bal.SpendToday(), bal.Currency()),
	)
	return err
}

// optionalString records whether a flag was given, so an explicit empty
// value is still sent.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(s string) error {
	o.value, o.set = s, true
	return nil
}

func runFeed(ctx context.Context, client *monzo.Client, args []string, out io.Writer) error {
	fs := newFlagSet("feed", out)
	account := fs.String("account", "", "account id")
	title := fs.String("title", "", "item title")
	imageURL := fs.String("image-url", "", "item icon URL")
	var link, body, background, bodyColor, titleColor optionalString
	fs.Var(&link, "url", "URL opened when the item is tapped")
	fs.Var(&body, "body", "item body text")
	fs.Var(&background, "background-color", "background colour, e.g. #FCF1EE")
	fs.Var(&bodyColor, "body-color", "body text colour")
	fs.Var(&titleColor, "title-color", "title colour")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := validation.New()
	v.Required("account", *account)
	v.Required("title", *title)
	v.Required("image-url", *imageURL)
	if err := v.Validate(); err != nil {
		return err
	}

	req := client.BasicFeedItem(*account, *title, *imageURL)
	if link.set {
		req = req.URL(link.value)
	}
	if body.set {
		req = req.Body(body.value)
	}
	if background.set {
		req = req.BackgroundColor(background.value)
	}
	if bodyColor.set {
		req = req.BodyColor(bodyColor.value)
	}
	if titleColor.set {
		req = req.TitleColor(titleColor.value)
	}

	if err := req.Send(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, "feed item created")
	return err
}

// metadataFlag collects repeated -meta key=value flags.
type metadataFlag map[string]string

func (m metadataFlag) String() string {
	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (m metadataFlag) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return apperrors.InvalidFormat("meta", "key=value")
	}
	m[key] = value
	return nil
}

func runAnnotate(ctx context.Context, client *monzo.Client, args []string, out io.Writer) error {
	fs := newFlagSet("annotate", out)
	txID := fs.String("transaction", "", "transaction id")
	meta := metadataFlag{}
	fs.Var(meta, "meta", "metadata entry key=value; repeatable, an empty value removes the key")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := validation.New().
		Required("transaction", *txID).
		Custom(len(meta) > 0, "meta", "at least one entry is required")
	if err := v.Validate(); err != nil {
		return err
	}

	tx, err := client.AnnotateTransaction(*txID, meta).Send(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s  %s  %s\n", tx.ID, tx.Created.Format("2006-01-02 15:04"), money.Format(tx.Amount, tx.Currency))
	if tx.Description != "" {
		fmt.Fprintf(out, "  %s\n", tx.Description)
	}
	keys := make([]string, 0, len(tx.Metadata))
	for k := range tx.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %s=%s\n", k, tx.Metadata[k])
	}
	return nil
}
