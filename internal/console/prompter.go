package console

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/dbsmedya/debtqueue/internal/debt"
	"github.com/dbsmedya/debtqueue/internal/logger"
)

// Options configures session output.
type Options struct {
	Color     bool
	Precision int
	Logger    *logger.Logger
}

// Prompter asks for values on a line-oriented terminal and re-prompts until
// each answer is valid.
type Prompter struct {
	reader *lineReader
	print  *printer
	opts   Options
	log    *logger.Logger
}

// NewPrompter starts reading lines from in. Call Close when done.
func NewPrompter(in io.Reader, out io.Writer, opts Options) *Prompter {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Prompter{
		reader: newLineReader(in),
		print:  &printer{out: out, color: opts.Color},
		opts:   opts,
		log:    log,
	}
}

// Close releases the input reader.
func (p *Prompter) Close() {
	p.reader.Close()
}

// PromptCapacity asks for the queue capacity until a positive integer is entered.
func (p *Prompter) PromptCapacity(ctx context.Context) (int, error) {
	return p.readInt(ctx,
		"Enter the capacity of the priority queue: ",
		"Invalid input. Please enter a positive number for the capacity: ",
		func(n int) bool { return n > 0 },
	)
}

// readDebt collects and validates every field of a new debt.
func (p *Prompter) readDebt(ctx context.Context) (debt.Debt, error) {
	description, err := p.readNonBlank(ctx, "Enter debt description: ")
	if err != nil {
		return debt.Debt{}, err
	}

	rate, err := p.readFloat(ctx,
		"Enter interest rate: ",
		"Invalid interest rate. Please enter a number between 0 and 100: ",
		debt.ValidateRate,
	)
	if err != nil {
		return debt.Debt{}, err
	}

	amount, err := p.readFloat(ctx,
		"Enter amount due: ",
		"Invalid amount. Please enter a positive value greater than zero: ",
		debt.ValidateAmount,
	)
	if err != nil {
		return debt.Debt{}, err
	}

	id, err := p.readID(ctx, "Enter debt ID: ")
	if err != nil {
		return debt.Debt{}, err
	}

	return debt.New(description, rate, amount, id)
}

func (p *Prompter) readID(ctx context.Context, label string) (int, error) {
	return p.readInt(ctx, label,
		"Invalid input. Please enter a valid debt ID: ",
		func(int) bool { return true },
	)
}

// readNonBlank skips empty lines, the way the menu loop always has.
func (p *Prompter) readNonBlank(ctx context.Context, label string) (string, error) {
	p.print.Prompt(label)
	for {
		text, err := p.reader.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
}

func (p *Prompter) readInt(ctx context.Context, label, retry string, valid func(int) bool) (int, error) {
	p.print.Prompt(label)
	for {
		text, err := p.reader.ReadLine(ctx)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(text))
		if convErr == nil && valid(n) {
			return n, nil
		}
		p.log.Debugw("rejected integer input", "input", text)
		p.print.Retry(retry)
	}
}

func (p *Prompter) readFloat(ctx context.Context, label, retry string, validate func(float64) error) (float64, error) {
	p.print.Prompt(label)
	for {
		text, err := p.reader.ReadLine(ctx)
		if err != nil {
			return 0, err
		}
		v, convErr := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if convErr == nil && validate(v) == nil {
			return v, nil
		}
		p.log.Debugw("rejected numeric input", "input", text)
		p.print.Retry(retry)
	}
}

// readChoice reads a menu key, re-prompting until it names a known entry.
func (p *Prompter) readChoice(ctx context.Context, label, retry string, known func(string) bool) (string, error) {
	p.print.Prompt(label)
	for {
		text, err := p.reader.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		key := strings.TrimSpace(text)
		if known(key) {
			return key, nil
		}
		p.print.Retry(retry)
	}
}
