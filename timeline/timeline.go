package timeline

import (
	"math"
	"sort"
)

// Property is one animated scalar. A property may be bound to several
// targets; Set writes all of them so that duplicated objects stay in
// lockstep, Get reads the first.
type Property struct {
	Name    string
	targets []*float64
}

func Float(name string, targets ...*float64) Property {
	return Property{
		Name:    name,
		targets: targets,
	}
}

func (p Property) Get() float64 {
	if len(p.targets) == 0 {
		return 0
	}
	return *p.targets[0]
}

func (p Property) Set(value float64) {
	for _, target := range p.targets {
		*target = value
	}
}

type Defaults struct {
	Duration float64
	Ease     Ease
}

type TweenOption func(tw *tween)

func WithEase(ease Ease) TweenOption {
	return func(tw *tween) {
		tw.ease = ease
	}
}

func WithDuration(duration float64) TweenOption {
	return func(tw *tween) {
		tw.duration = duration
	}
}

type tween struct {
	property Property
	from     float64
	to       float64
	start    float64
	duration float64
	ease     Ease
}

func (tw *tween) end() float64 {
	return tw.start + tw.duration
}

func (tw *tween) valueAt(time float64) float64 {
	if tw.duration <= 0 || time >= tw.end() {
		return tw.to
	}
	u := clamp((time-tw.start)/tw.duration, 0, 1)
	return tw.from + (tw.to-tw.from)*tw.ease(u)
}

type track struct {
	name   string
	tweens []*tween
}

// Timeline is a set of absolute-position tweens that is scrubbed rather
// than played: Seek renders the state at any time directly.
type Timeline struct {
	defaults Defaults
	tracks   []*track
	byName   map[string]*track
	duration float64
	time     float64
}

func New(defaults Defaults) *Timeline {
	if defaults.Duration <= 0 {
		defaults.Duration = 1
	}
	if defaults.Ease == nil {
		defaults.Ease = MustEase(DefaultEaseName)
	}
	return &Timeline{
		defaults: defaults,
		byName:   make(map[string]*track),
	}
}

// To adds a tween that moves the property to target, starting at the
// given timeline position. The start value is the end value of the
// property's preceding tween, or its current value if there is none.
// Tweens on one property must not overlap.
func (t *Timeline) To(property Property, target, at float64, opts ...TweenOption) {
	tw := &tween{
		property: property,
		to:       target,
		start:    at,
		duration: t.defaults.Duration,
		ease:     t.defaults.Ease,
	}
	for _, opt := range opts {
		opt(tw)
	}

	tr, ok := t.byName[property.Name]
	if !ok {
		tr = &track{name: property.Name}
		t.byName[property.Name] = tr
		t.tracks = append(t.tracks, tr)
	}

	index := sort.Search(len(tr.tweens), func(i int) bool {
		return tr.tweens[i].start > at
	})
	if index > 0 {
		tw.from = tr.tweens[index-1].to
	} else {
		tw.from = property.Get()
	}
	tr.tweens = append(tr.tweens, nil)
	copy(tr.tweens[index+1:], tr.tweens[index:])
	tr.tweens[index] = tw
	if index+1 < len(tr.tweens) {
		tr.tweens[index+1].from = tw.to
	}

	t.duration = max(t.duration, tw.end())
}

func (t *Timeline) Duration() float64 {
	return t.duration
}

func (t *Timeline) Time() float64 {
	return t.time
}

// Progress returns the playhead as a fraction of the duration.
func (t *Timeline) Progress() float64 {
	if t.duration <= 0 {
		return 0
	}
	return t.time / t.duration
}

// Seek renders every property at the given time, clamped to the
// timeline's extent.
func (t *Timeline) Seek(time float64) {
	t.time = clamp(time, 0, t.duration)
	for _, tr := range t.tracks {
		tr.render(t.time)
	}
}

// SeekProgress is Seek with a time expressed as a fraction of the
// duration. Values outside [0,1] are clamped.
func (t *Timeline) SeekProgress(progress float64) {
	t.Seek(clamp(progress, 0, 1) * t.duration)
}

func (tr *track) render(time float64) {
	index := sort.Search(len(tr.tweens), func(i int) bool {
		return tr.tweens[i].start > time
	})
	if index == 0 {
		first := tr.tweens[0]
		first.property.Set(first.from)
		return
	}
	active := tr.tweens[index-1]
	active.property.Set(active.valueAt(time))
}

func clamp(value, lower, upper float64) float64 {
	if math.IsNaN(value) {
		return lower
	}
	return min(max(value, lower), upper)
}
