package console

import "fmt"

// PageSize is the number of records shown per request
const PageSize = 5

const (
	pagerQuestion = "Would you like to view individual trip Data? Type 'yes' or 'no'. \n"
	pagerInvalid  = "Invalid answer try again. Type 'yes' or 'no'  \n"
	pagerEnd      = "no more records available"
)

// Page shows records PageSize at a time for as long as the user answers yes.
// render prints one batch. Once the records run out every further yes only
// prints the end-of-data notice; no returns.
func Page[T any](p *Prompter, records []T, render func(batch []T) error) error {
	cursor := 0
	for {
		more, err := AskYesNo(p, pagerQuestion, pagerInvalid)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		if cursor >= len(records) {
			fmt.Fprintln(p.out, pagerEnd)
			continue
		}

		end := min(cursor+PageSize, len(records))
		if err := render(records[cursor:end]); err != nil {
			return fmt.Errorf("failed to print records: %w", err)
		}
		cursor = end

		if cursor >= len(records) {
			fmt.Fprintln(p.out, pagerEnd)
		}
	}
}
