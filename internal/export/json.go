package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/trajsim/internal/flight"
)

type Parameters struct {
	Mass            float64 `json:"mass_kg"`
	InitialSpeed    float64 `json:"initial_speed_mps"`
	LaunchAngle     float64 `json:"launch_angle_deg"`
	DragCoefficient float64 `json:"drag_coefficient"`
	WingArea        float64 `json:"wing_area_sqm"`
	TimeStep        float64 `json:"time_step_s"`
	MaxTime         float64 `json:"max_time_s"`
}

type Summary struct {
	Outcome    string  `json:"outcome"`
	Steps      int     `json:"steps"`
	Range      float64 `json:"range_m"`
	MaxHeight  float64 `json:"max_height_m"`
	FlightTime float64 `json:"flight_time_s"`
}

type ExportData struct {
	Integrator string             `json:"integrator"`
	Parameters Parameters         `json:"parameters"`
	Summary    Summary            `json:"summary"`
	Metrics    map[string]float64 `json:"metrics"`
	Samples    []flight.Sample    `json:"samples"`
}

func NewExportData(integrator string, cfg flight.Config, traj *flight.Trajectory) ExportData {
	return ExportData{
		Integrator: integrator,
		Parameters: Parameters{
			Mass:            cfg.Mass(),
			InitialSpeed:    cfg.InitialSpeed(),
			LaunchAngle:     cfg.LaunchAngle(),
			DragCoefficient: cfg.DragCoefficient(),
			WingArea:        cfg.WingArea(),
			TimeStep:        cfg.TimeStep(),
			MaxTime:         cfg.MaxTime(),
		},
		Summary: Summary{
			Outcome:    traj.Outcome().String(),
			Steps:      traj.Steps(),
			Range:      traj.Range(),
			MaxHeight:  traj.MaxHeight(),
			FlightTime: traj.FlightTime(),
		},
		Metrics: traj.Metrics(),
		Samples: traj.Samples(),
	}
}

func WriteJSON(w io.Writer, integrator string, cfg flight.Config, traj *flight.Trajectory) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(integrator, cfg, traj))
}
