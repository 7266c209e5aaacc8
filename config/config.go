package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mokiat/gomath/dprec"
	"gopkg.in/yaml.v3"

	"github.com/nobonobo/bear-vs-witch/asset"
	"github.com/nobonobo/bear-vs-witch/choreo"
	"github.com/nobonobo/bear-vs-witch/scene"
	"github.com/nobonobo/bear-vs-witch/timeline"
)

// DefaultPath is where the command looks for a config file when none is
// given.
const DefaultPath = "scene.yaml"

type Vec3 [3]float64

func (v Vec3) dprec() dprec.Vec3 {
	return dprec.NewVec3(v[0], v[1], v[2])
}

type Colors struct {
	Background     string `yaml:"background"`
	WireBackground string `yaml:"wireBackground"`
	Wire           string `yaml:"wire"`
	Light          string `yaml:"light"`
	Sky            string `yaml:"sky"`
	Ground         string `yaml:"ground"`
}

type Fog struct {
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

type Camera struct {
	FoV      float64 `yaml:"fov"`
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
}

type Shadow struct {
	Far        float64 `yaml:"far"`
	MapSize    int     `yaml:"mapSize"`
	NormalBias float64 `yaml:"normalBias"`
}

type Lights struct {
	Intensity           float64 `yaml:"intensity"`
	Position            Vec3    `yaml:"position"`
	HemisphereIntensity float64 `yaml:"hemisphereIntensity"`
	Shadow              Shadow  `yaml:"shadow"`
}

type Renderer struct {
	MaxPixelRatio float64 `yaml:"maxPixelRatio"`
	Exposure      float64 `yaml:"exposure"`
}

type Timeline struct {
	DefaultEase string        `yaml:"defaultEase"`
	ScrubLag    time.Duration `yaml:"scrubLag"`
	BearStartX  float64       `yaml:"bearStartX"`
	WitchStartX float64       `yaml:"witchStartX"`
}

type Loop struct {
	FrameRate int `yaml:"frameRate"`
}

type Config struct {
	Colors    Colors        `yaml:"colors"`
	Fog       Fog           `yaml:"fog"`
	Camera    Camera        `yaml:"camera"`
	Lights    Lights        `yaml:"lights"`
	FloorSize float64       `yaml:"floorSize"`
	Renderer  Renderer      `yaml:"renderer"`
	Models    []asset.Entry `yaml:"models"`
	Timeline  Timeline      `yaml:"timeline"`
	Loop      Loop          `yaml:"loop"`
}

// Default returns the built-in scene configuration.
func Default() Config {
	return Config{
		Colors: Colors{
			Background:     "white",
			WireBackground: "steelblue",
			Wire:           "white",
			Light:          "#ffffff",
			Sky:            "#aaaaff",
			Ground:         "#88ff88",
		},
		Fog: Fog{
			Near: 15,
			Far:  20,
		},
		Camera: Camera{
			FoV:      40,
			Near:     0.1,
			Far:      100,
			Position: Vec3{0, 1, 3},
			Target:   Vec3{0, 4, 0},
		},
		Lights: Lights{
			Intensity:           2,
			Position:            Vec3{2, 5, 3},
			HemisphereIntensity: 0.5,
			Shadow: Shadow{
				Far:        10,
				MapSize:    1024,
				NormalBias: 0.05,
			},
		},
		FloorSize: 100,
		Renderer: Renderer{
			MaxPixelRatio: 2,
			Exposure:      5,
		},
		Models: []asset.Entry{
			{Name: choreo.ModelWitch, Path: "models/witch.gltf"},
			{Name: choreo.ModelBear, Path: "models/bear.gltf"},
		},
		Timeline: Timeline{
			DefaultEase: timeline.DefaultEaseName,
			ScrubLag:    100 * time.Millisecond,
			BearStartX:  -5,
			WitchStartX: 5,
		},
		Loop: Loop{
			FrameRate: 60,
		},
	}
}

// Load overlays the YAML file at path on top of Default. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c Config) Validate() error {
	if _, err := c.StageSettings(); err != nil {
		return err
	}
	if _, err := c.ChoreoOptions(); err != nil {
		return err
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid camera clip range [%v, %v]", c.Camera.Near, c.Camera.Far)
	}
	if c.Timeline.ScrubLag < 0 {
		return fmt.Errorf("negative scrub lag %v", c.Timeline.ScrubLag)
	}
	if c.Loop.FrameRate <= 0 {
		return fmt.Errorf("invalid frame rate %d", c.Loop.FrameRate)
	}
	names := make(map[string]bool)
	for _, entry := range c.Models {
		if entry.Name == "" || entry.Path == "" {
			return fmt.Errorf("model entries need a name and a path")
		}
		if names[entry.Name] {
			return fmt.Errorf("duplicate model %q", entry.Name)
		}
		names[entry.Name] = true
	}
	for _, required := range []string{choreo.ModelBear, choreo.ModelWitch} {
		if !names[required] {
			return fmt.Errorf("missing model %q", required)
		}
	}
	return nil
}

func (c Config) StageSettings() (scene.Settings, error) {
	settings := scene.Settings{
		FogNear:             c.Fog.Near,
		FogFar:              c.Fog.Far,
		CameraFoV:           dprec.Degrees(c.Camera.FoV),
		CameraNear:          c.Camera.Near,
		CameraFar:           c.Camera.Far,
		CameraPosition:      c.Camera.Position.dprec(),
		CameraTarget:        c.Camera.Target.dprec(),
		LightIntensity:      c.Lights.Intensity,
		LightPosition:       c.Lights.Position.dprec(),
		HemisphereIntensity: c.Lights.HemisphereIntensity,
		Shadow: scene.ShadowSettings{
			Far:        c.Lights.Shadow.Far,
			MapSize:    c.Lights.Shadow.MapSize,
			NormalBias: c.Lights.Shadow.NormalBias,
		},
		FloorSize:           c.FloorSize,
		MaxPixelRatio:       c.Renderer.MaxPixelRatio,
		ToneMappingExposure: c.Renderer.Exposure,
	}

	var err error
	parse := func(value string) colorful.Color {
		if err != nil {
			return colorful.Color{}
		}
		var parsed colorful.Color
		parsed, err = scene.ParseColor(value)
		return parsed
	}
	settings.Background = parse(c.Colors.Background)
	settings.WireBackground = parse(c.Colors.WireBackground)
	settings.WireColor = parse(c.Colors.Wire)
	settings.Light = parse(c.Colors.Light)
	settings.Sky = parse(c.Colors.Sky)
	settings.Ground = parse(c.Colors.Ground)
	if err != nil {
		return scene.Settings{}, err
	}
	return settings, nil
}

func (c Config) ChoreoOptions() (choreo.Options, error) {
	ease, err := timeline.ParseEase(c.Timeline.DefaultEase)
	if err != nil {
		return choreo.Options{}, err
	}
	return choreo.Options{
		DefaultEase: ease,
		BearStartX:  c.Timeline.BearStartX,
		WitchStartX: c.Timeline.WitchStartX,
	}, nil
}
