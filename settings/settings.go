package settings

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Testing holds flags related to testing and debugging a run.
type Testing struct {
	// RestartFromLast resumes from the most recent participant's saved
	// session instead of allocating a new one.
	RestartFromLast bool `yaml:"restart_from_last"`

	// UseEyetracker selects the position-input source for the run. When
	// true, gaze position comes from the eye-tracker device; when false,
	// the presentation layer reads mouse coordinates instead. This package
	// only carries the flag through to the effective settings.
	UseEyetracker bool `yaml:"use_eyetracker"`

	SaveLog      bool `yaml:"save_log"`
	SaveSnapshot bool `yaml:"save_snapshot"`
	SaveEyeData  bool `yaml:"save_eye_data"`

	ShowGUI           bool `yaml:"show_gui"`
	Fullscreen        bool `yaml:"fullscreen"`
	LongerInitialWait bool `yaml:"longer_initial_wait"`
	ShowOverlap       bool `yaml:"show_overlap"`
	RunLottery        bool `yaml:"run_lottery"`

	CheckFramerate   bool `yaml:"check_framerate"`
	RecordFramedrops bool `yaml:"record_framedrops"`
	MoveForever      bool `yaml:"move_forever"`
	SkipResponse     bool `yaml:"skip_response"`

	// AllSameCondition forces every trial to the given condition index.
	// -1 keeps the usual condition proportions.
	AllSameCondition int `yaml:"all_same_condition"`

	SkipAllTrackedFlash bool `yaml:"skip_all_tracked_flash"`
}

// InputSource names the position-input device selected by UseEyetracker:
// "eyetracker" when true, "mouse" when false.
func (t Testing) InputSource() string {
	if t.UseEyetracker {
		return "eyetracker"
	}
	return "mouse"
}

// Loop holds the parameters for one experimental routine.
type Loop struct {
	N                      int       `yaml:"loop_n"`
	ConditionProbabilities []float64 `yaml:"condition_probabilities"`
	TrialsPerBlock         int       `yaml:"trials_per_block"`
	Blocks                 int       `yaml:"blocks"`
	Tracked                int       `yaml:"tracked"`
}

// TrialsInRoutine returns the total number of trials across all blocks.
func (l Loop) TrialsInRoutine() int {
	return l.Blocks * l.TrialsPerBlock
}

// Experiment holds general parameters about the experiment itself.
type Experiment struct {
	Name                string `yaml:"name"`
	SaveFolder          string `yaml:"save_folder"`
	StartingParticipant int    `yaml:"starting_participant"`

	// RootDir anchors relative data paths. Empty means the process
	// working directory.
	RootDir string `yaml:"root_dir"`
}

// Window holds display geometry for the experiment window.
//
// Dimensions, Centre, Spacing and FixationRadius are in normalized height
// units; ScreenSize is in pixels.
type Window struct {
	Dimensions     [2]float64 `yaml:"dimensions"`
	Centre         [2]float64 `yaml:"centre"`
	PartitionSplit [2]int     `yaml:"partition_split"`
	Spacing        [2]float64 `yaml:"spacing"`
	FixationRadius float64    `yaml:"fixation_radius"`

	ScreenSize [2]int `yaml:"screen_size"`
	Framerate  int    `yaml:"framerate"`
	ScreenN    int    `yaml:"screen_n"`
}

// Ratio returns the width/height aspect ratio of the screen.
func (w Window) Ratio() float64 {
	if w.ScreenSize[1] == 0 {
		return 0
	}
	return float64(w.ScreenSize[0]) / float64(w.ScreenSize[1])
}

// Timing holds trial timing parameters. Values are in seconds; use the
// Duration helpers where a time.Duration is needed.
type Timing struct {
	Wait             float64    `yaml:"wait_time"`
	Flash            float64    `yaml:"flash_time"`
	TrialLength      [2]float64 `yaml:"trial_length"`
	MaxCross         float64    `yaml:"max_cross_time"`
	MaxChange        float64    `yaml:"max_change_time"`
	PostCrossLength  [2]float64 `yaml:"post_cross_length"`
	PostChangeLength [2]float64 `yaml:"post_change_length"`
	MaxResponse      float64    `yaml:"max_response_time"`
	Break            float64    `yaml:"break_time"`
	Fade             float64    `yaml:"fade_time"`
	FlashesPerSecond float64    `yaml:"flashes_per_second"`
	MaxNaN           float64    `yaml:"max_nan_time"`
	MaxGazeBreak     float64    `yaml:"max_gazebreak_time"`
}

// WaitDuration returns the pre-movement wait as a time.Duration.
func (t Timing) WaitDuration() time.Duration { return seconds(t.Wait) }

// BreakDuration returns the between-block break as a time.Duration.
func (t Timing) BreakDuration() time.Duration { return seconds(t.Break) }

// MaxResponseDuration returns the response timeout as a time.Duration.
func (t Timing) MaxResponseDuration() time.Duration { return seconds(t.MaxResponse) }

// FadeDuration returns the default fade-in time as a time.Duration.
func (t Timing) FadeDuration() time.Duration { return seconds(t.Fade) }

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// Stimulus holds parameters for the moving stimuli.
type Stimulus struct {
	N      int     `yaml:"n"`
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// Diameter returns the stimulus diameter.
func (s Stimulus) Diameter() float64 {
	return s.Radius * 2
}

// SpeedPerFrame returns the per-frame movement speed at the given framerate.
func (s Stimulus) SpeedPerFrame(framerate int) float64 {
	if framerate <= 0 {
		return 0
	}
	return s.Speed / float64(framerate)
}

// Keys holds the response-key bindings for run control.
type Keys struct {
	// Quit exits the experiment.
	Quit string `yaml:"quit"`
	// Pause pauses the experiment.
	Pause string `yaml:"pause"`
	// Continue skips to the next trial.
	Continue string `yaml:"continue"`
}

// Settings aggregates every parameter record for a run. A Settings produced
// by Defaults or Load is the baseline that Resolve overlays device presets
// onto; the resolved result is read-only for the remainder of the run.
type Settings struct {
	Testing    Testing    `yaml:"testing"`
	Experiment Experiment `yaml:"experiment"`
	Window     Window     `yaml:"window"`
	Timing     Timing     `yaml:"timing"`
	Stimulus   Stimulus   `yaml:"stimulus"`
	Loops      []Loop     `yaml:"loops"`
	Keys       Keys       `yaml:"keys"`
}

// Defaults returns the baseline parameter set.
func Defaults() Settings {
	return Settings{
		Testing: Testing{
			RestartFromLast:     false,
			UseEyetracker:       true,
			SaveLog:             false,
			SaveSnapshot:        true,
			SaveEyeData:         true,
			ShowGUI:             false,
			Fullscreen:          false,
			LongerInitialWait:   true,
			ShowOverlap:         true,
			RunLottery:          true,
			CheckFramerate:      false,
			RecordFramedrops:    false,
			MoveForever:         false,
			SkipResponse:        false,
			AllSameCondition:    -1,
			SkipAllTrackedFlash: true,
		},
		Experiment: Experiment{
			Name:                "MOT1",
			SaveFolder:          "data/final",
			StartingParticipant: 1,
		},
		Window: Window{
			Dimensions:     [2]float64{0.75, 0.75},
			Centre:         [2]float64{0, 0},
			PartitionSplit: [2]int{2, 2},
			Spacing:        [2]float64{0.125, 0.125},
			FixationRadius: 0.1,
			ScreenSize:     [2]int{1920, 1080},
			Framerate:      60,
			ScreenN:        0,
		},
		Timing: Timing{
			Wait:             0.5,
			Flash:            1,
			TrialLength:      [2]float64{3, 7},
			MaxCross:         6,
			MaxChange:        6.5,
			PostCrossLength:  [2]float64{0.2, 0.4},
			PostChangeLength: [2]float64{0.1, 0.3},
			MaxResponse:      5,
			Break:            5,
			Fade:             0.5,
			FlashesPerSecond: 1,
			MaxNaN:           2,
			MaxGazeBreak:     0.8,
		},
		Stimulus: Stimulus{
			N:      4,
			Speed:  0.15,
			Radius: 0.045,
		},
		Loops: []Loop{
			{
				N:                      0,
				ConditionProbabilities: []float64{0.6, 0.2, 0.2},
				TrialsPerBlock:         45,
				Blocks:                 6,
				Tracked:                4,
			},
			// Routine to test ceiling performance.
			{
				N:                      1,
				ConditionProbabilities: []float64{0.6, 0.2, 0.2},
				TrialsPerBlock:         45,
				Blocks:                 2,
				Tracked:                1,
			},
		},
		Keys: Keys{
			Quit:     "escape",
			Pause:    "numlock",
			Continue: "semicolon",
		},
	}
}

// Load reads an authored parameters file and overlays it on the defaults.
// Only keys present in the file replace defaults. A missing file is not an
// error: the defaults are returned unchanged.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read parameters file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Defaults(), fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}
