package persistence

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/storage"
)

func TestLoadEmpty(t *testing.T) {
	g := New(storage.NewMemoryStore())

	got := g.Load()
	if !reflect.DeepEqual(got, models.NewTrackerState()) {
		t.Errorf("Load() on empty store = %+v, want empty state", got)
	}

	if _, ok, err := g.LoadDocument(); ok || err != nil {
		t.Errorf("LoadDocument() ok=%v err=%v, want nothing stored", ok, err)
	}
}

func TestLoadUnreadable(t *testing.T) {
	mem := storage.NewMemoryStore()
	if err := mem.Set(constants.StateKey, "{not json"); err != nil {
		t.Fatal(err)
	}
	g := New(mem)

	if got := g.Load(); !reflect.DeepEqual(got, models.NewTrackerState()) {
		t.Errorf("Load() = %+v, want empty state", got)
	}

	doc, ok, err := g.LoadDocument()
	if err != nil || !ok || doc != nil {
		t.Errorf("LoadDocument() = %v, %v, %v; want nil document that exists", doc, ok, err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	g := New(storage.NewMemoryStore())

	rec := models.NewDayRecord()
	rec.CompletedBlocks = []int{0, 2}
	rec.SkippedReasons[1] = "interview"
	rec.OverriddenTimes[2] = models.TimeRange{Start: "18:00", End: "19:30"}
	rec.Notes = "graphs"
	state := models.NewTrackerState().WithDay("2026-10-15", rec)
	state.WeakAreas = []string{"DP", "Graphs"}
	state.Reviews["2026-W42"] = json.RawMessage(`{"wins":"bfs"}`)

	if err := g.Save(state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := g.Load()
	if !reflect.DeepEqual(got, state) {
		t.Errorf("Load() = %+v\nwant %+v", got, state)
	}
}

func TestSaveFailure(t *testing.T) {
	mem := storage.NewMemoryStore()
	mem.FailWrites = true
	g := New(mem)

	err := g.Save(models.NewTrackerState())
	if err == nil {
		t.Fatal("expected Save to report the write failure")
	}

	mem.WriteErr = errors.New("quota")
	if err := g.Save(models.NewTrackerState()); !errors.Is(err, mem.WriteErr) {
		t.Errorf("Save error = %v, want wrapped quota error", err)
	}
}

func TestDecodeNormalizes(t *testing.T) {
	state, err := Decode([]byte(`{"dailyProgress":{"2026-10-15":{"completedBlocks":[1]}}}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	rec := state.DailyProgress["2026-10-15"]
	if rec.SkippedReasons == nil || rec.OverriddenTimes == nil || rec.OverriddenSubjects == nil {
		t.Error("Decode left nil maps in the day record")
	}
	if state.WeakAreas == nil || state.Reviews == nil {
		t.Error("Decode left nil top-level collections")
	}
}

func TestDecodeBlockIndices(t *testing.T) {
	tests := []struct {
		name    string
		blocks  string
		want    []int
		wantErr bool
	}{
		{name: "integers", blocks: `[2,0]`, want: []int{2, 0}},
		{name: "whole-number floats", blocks: `[1.0,3e0]`, want: []int{1, 3}},
		{name: "repeats dropped", blocks: `[0,1,0,1.0]`, want: []int{0, 1}},
		{name: "null", blocks: `null`, want: []int{}},
		{name: "fraction", blocks: `[1.5]`, wantErr: true},
		{name: "negative", blocks: `[-1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `{"dailyProgress":{"2026-10-15":{"completedBlocks":` + tt.blocks + `}},"weakAreas":[],"reviews":{}}`
			state, err := Decode([]byte(raw))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got := state.DailyProgress["2026-10-15"].CompletedBlocks; !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CompletedBlocks = %v, want %v", got, tt.want)
			}
		})
	}
}
