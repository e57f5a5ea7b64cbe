// Package profiler records nested timing scopes into a fixed-size ring and
// writes them as a speedscope evented profile.
//
// Recording is off until Enable is called; Start is then a few atomic
// operations per scope.
package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

const schemaURL = "https://www.speedscope.app/file-format-schema.json"

// ErrEmpty is returned when there is nothing to write.
var ErrEmpty = errors.New("profiler: no scopes recorded")

type mark struct {
	at    int64 // unix nanoseconds
	frame int
	open  bool
}

type ring struct {
	enabled atomic.Bool
	size    uint64
	next    atomic.Uint64
	marks   []mark
}

var (
	rec ring

	namesMu sync.Mutex
	names   []string
	nameIDs = map[string]int{}
)

// Enable starts recording into a ring of capacity marks (two per scope).
// Older marks are overwritten once the ring is full.
func Enable(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	rec.enabled.Store(false)
	rec.size = uint64(capacity)
	rec.marks = make([]mark, capacity)
	rec.next.Store(0)
	rec.enabled.Store(true)
}

// Disable stops recording. Recorded scopes are kept until the next Enable.
func Disable() { rec.enabled.Store(false) }

func Enabled() bool { return rec.enabled.Load() }

// Start opens a scope and returns the function that closes it.
func Start(name string) (end func()) {
	if !rec.enabled.Load() {
		return func() {}
	}
	id := frameID(name)
	begin := time.Now().UnixNano()
	rec.push(mark{at: begin, frame: id, open: true})
	return func() {
		rec.push(mark{at: max(time.Now().UnixNano(), begin), frame: id})
	}
}

func (r *ring) push(m mark) {
	i := r.next.Add(1) - 1
	r.marks[i%r.size] = m
}

// snapshot returns the marks still in the ring in write order.
func (r *ring) snapshot() []mark {
	n := r.next.Load()
	if n == 0 {
		return nil
	}
	var first uint64
	if n > r.size {
		first = n - r.size
	}
	out := make([]mark, 0, n-first)
	for i := first; i < n; i++ {
		out = append(out, r.marks[i%r.size])
	}
	return out
}

func frameID(name string) int {
	namesMu.Lock()
	defer namesMu.Unlock()
	if id, ok := nameIDs[name]; ok {
		return id
	}
	id := len(names)
	nameIDs[name] = id
	names = append(names, name)
	return id
}

type document struct {
	Schema   string    `json:"$schema"`
	Shared   shared    `json:"shared"`
	Profiles []profile `json:"profiles"`
	Exporter string    `json:"exporter,omitempty"`
	Name     string    `json:"name,omitempty"`
}

type shared struct {
	Frames []frame `json:"frames"`
}

type frame struct {
	Name string `json:"name"`
}

type profile struct {
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	StartValue int64   `json:"startValue"`
	EndValue   int64   `json:"endValue"`
	Events     []event `json:"events"`
}

type event struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // microseconds since the first mark
	Frame int    `json:"frame"`
}

// events turns marks into balanced speedscope events. Closes without a
// matching open (their open was overwritten) are dropped and scopes still
// open at the end are closed at the last timestamp.
func events(marks []mark) ([]event, int64) {
	if len(marks) == 0 {
		return nil, 0
	}
	base := marks[0].at
	out := make([]event, 0, len(marks))
	var stack []int
	var last int64

	for _, m := range marks {
		at := max((m.at-base)/1000, last)
		if m.open {
			stack = append(stack, m.frame)
			out = append(out, event{Type: "O", At: at, Frame: m.frame})
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != m.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, event{Type: "C", At: at, Frame: m.frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, event{Type: "C", At: last, Frame: stack[i]})
	}
	return out, last
}

// Write encodes the recorded scopes as a speedscope JSON document.
func Write(w io.Writer, name string) error {
	evs, end := events(rec.snapshot())
	if len(evs) == 0 {
		return ErrEmpty
	}

	namesMu.Lock()
	frames := make([]frame, len(names))
	for i, n := range names {
		frames[i] = frame{Name: n}
	}
	namesMu.Unlock()

	doc := document{
		Schema: schemaURL,
		Shared: shared{Frames: frames},
		Profiles: []profile{{
			Type:     "evented",
			Name:     name,
			Unit:     "microseconds",
			EndValue: end,
			Events:   evs,
		}},
		Exporter: "canvas2d-profiler",
		Name:     name,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&doc)
}

// Dump writes the profile to path, replacing it atomically.
func Dump(path, name string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	if err := Write(f, name); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}
