package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-content-keeper/internal/service"
	"github.com/MKhiriev/go-content-keeper/models"
)

func list[T models.Record, I any](ctx context.Context, out io.Writer, sync service.Synchronizer[T, I]) error {
	if err := sync.Load(ctx); err != nil {
		return err
	}

	records, err := sync.Records(ctx)
	if err != nil {
		return err
	}
	if records == nil {
		records = []T{}
	}
	return writeJSON(out, records)
}

func create[T models.Record, I any](ctx context.Context, in io.Reader, out io.Writer, sync service.Synchronizer[T, I], args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: create takes one JSON input", ErrUsage)
	}

	var input I
	if err := decodeInput(args[0], in, &input); err != nil {
		return err
	}

	created, err := sync.Create(ctx, input)
	if err != nil {
		return err
	}
	return writeJSON(out, created)
}

func update[T models.Record, I any](ctx context.Context, in io.Reader, out io.Writer, sync service.Synchronizer[T, I], args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: update takes an id and one JSON input", ErrUsage)
	}

	var input I
	if err := decodeInput(args[1], in, &input); err != nil {
		return err
	}

	// each run starts from whatever the store holds; refresh it so the id
	// check runs against the server's current set.
	if err := sync.Load(ctx); err != nil {
		return err
	}

	updated, err := sync.Update(ctx, models.ID(args[0]), input)
	if err != nil {
		return err
	}
	return writeJSON(out, updated)
}

func remove[T models.Record, I any](ctx context.Context, out io.Writer, sync service.Synchronizer[T, I], args []string) error {
	ids := make([]models.ID, 0, len(args))
	for _, a := range args {
		ids = append(ids, models.ID(a))
	}

	if err := sync.Load(ctx); err != nil {
		return err
	}

	deleted, err := sync.Delete(ctx, ids...)
	if err != nil {
		return err
	}
	return writeJSON(out, map[string][]models.ID{"deletedIds": deleted})
}

func reset[T models.Record, I any](ctx context.Context, out io.Writer, sync service.Synchronizer[T, I]) error {
	if err := sync.Reset(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "dropped local %s\n", sync.Entity().Plural())
	return err
}

// eventLine is the JSON form of a synchronizer event printed by watch.
type eventLine struct {
	At         time.Time   `json:"at"`
	MutationID string      `json:"mutation_id"`
	Entity     string      `json:"entity"`
	Op         string      `json:"op"`
	State      string      `json:"state"`
	IDs        []models.ID `json:"ids,omitempty"`
	Record     any         `json:"record,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func newEventLine[T models.Record](ev service.Event[T]) eventLine {
	line := eventLine{
		At:         ev.At,
		MutationID: ev.MutationID,
		Entity:     ev.Entity.String(),
		Op:         string(ev.Op),
		State:      ev.State.String(),
		IDs:        ev.IDs,
	}
	if !ev.Record.RecordID().IsZero() {
		line.Record = ev.Record
	}
	if ev.Err != nil {
		line.Error = ev.Err.Error()
	}
	return line
}

// watch loads the collection once and then prints every event until ctx is
// done. Idle events are not printed.
func watch[T models.Record, I any](ctx context.Context, out io.Writer, sync service.Synchronizer[T, I]) error {
	events, cancel := sync.Subscribe(64)
	defer cancel()

	// a failed initial load is printed as an event like any other
	_ = sync.Load(ctx)

	enc := json.NewEncoder(out)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.State == service.StateIdle {
				continue
			}
			if err := enc.Encode(newEventLine(ev)); err != nil {
				return err
			}
		}
	}
}

// decodeInput decodes arg, or stdin when arg is "-", into dst. Unknown
// fields are rejected.
func decodeInput(arg string, in io.Reader, dst any) error {
	raw := []byte(arg)
	if arg == "-" {
		var err error
		if raw, err = io.ReadAll(in); err != nil {
			return fmt.Errorf("%w: read stdin: %w", ErrInvalidInput, err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
