package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/san-kum/trajsim/internal/flight"
)

func simulate(t *testing.T) (flight.Config, *flight.Trajectory) {
	t.Helper()
	cfg, err := flight.NewConfig(0.005, 10, 30, 0.1, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	traj, err := flight.Simulate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return cfg, traj
}

func TestWriteCSV(t *testing.T) {
	_, traj := simulate(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, traj); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != traj.Len()+1 {
		t.Fatalf("got %d records, want %d", len(records), traj.Len()+1)
	}
	if strings.Join(records[0], ",") != "time_s,x_m,y_m" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "0.000000" {
		t.Errorf("first time = %s", records[1][0])
	}
}

func TestWriteJSON(t *testing.T) {
	cfg, traj := simulate(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, "semi_implicit_euler", cfg, traj); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Parameters.Mass != 0.005 || data.Parameters.TimeStep != 0.01 {
		t.Errorf("parameters = %+v", data.Parameters)
	}
	if data.Summary.Outcome != "landed" || data.Summary.Steps != traj.Steps() {
		t.Errorf("summary = %+v", data.Summary)
	}
	if len(data.Samples) != traj.Len() {
		t.Errorf("samples = %d, want %d", len(data.Samples), traj.Len())
	}
	if _, ok := data.Metrics[flight.MetricApex]; !ok {
		t.Error("apex metric missing")
	}
}

func TestWriteSVG(t *testing.T) {
	_, traj := simulate(t)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, traj, 400, 200); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<path") || !strings.Contains(out, "<line") {
		t.Error("missing path or ground line")
	}

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.Fatalf("SVG is not well-formed: %v", err)
			}
			break
		}
	}
}
