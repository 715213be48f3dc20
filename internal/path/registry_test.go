package path

import (
	"testing"

	"github.com/ivlev/cardmotion/internal/geom"
)

func TestRegistryBuiltins(t *testing.T) {
	want := []string{TypeCircular, TypeLinear, TypeLissajous, TypeLorenz, TypeSpline}
	got := Default.GetTypes()

	if len(got) != len(want) {
		t.Fatalf("Expected %d built-in types, got %d: %v", len(want), len(got), got)
	}
	for i, id := range want {
		if got[i] != id {
			t.Errorf("Type %d: expected %q, got %q", i, id, got[i])
		}
	}
}

func TestRegistryUnknownType(t *testing.T) {
	gen := Default.Create("figure-eight", nil)
	if gen != nil {
		t.Errorf("Unknown type should yield nil, got %T", gen)
	}
}

func TestRegistryRegisterUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("still", func(params map[string]float64) Generator {
		return NewLinearPath(map[string]float64{
			"startX": 0, "startY": 0, "startZ": 0,
			"endX": 0, "endY": 0, "endZ": 0,
		})
	}, func() Config {
		return Config{Type: "still", Name: "Still"}
	})

	if !r.Has("still") {
		t.Fatal("Expected registered type to be present")
	}
	if gen := r.Create("still", nil); gen == nil {
		t.Fatal("Expected Create to succeed for registered type")
	}

	r.Unregister("still")
	if r.Has("still") {
		t.Error("Expected unregistered type to be absent")
	}
	if gen := r.Create("still", nil); gen != nil {
		t.Error("Expected Create to fail after Unregister")
	}
}

func TestRegistryConfigsMatchTypes(t *testing.T) {
	configs := Default.GetAllConfigs()
	types := Default.GetTypes()

	if len(configs) != len(types) {
		t.Fatalf("Config count %d != type count %d", len(configs), len(types))
	}
	for i, cfg := range configs {
		if cfg.Type != types[i] {
			t.Errorf("Config %d: type %q != id %q", i, cfg.Type, types[i])
		}
		if len(cfg.DefaultParams) == 0 {
			t.Errorf("Config %q has no default params", cfg.Type)
		}
		for _, meta := range cfg.Parameters {
			if _, ok := cfg.DefaultParams[meta.Key]; !ok {
				t.Errorf("Config %q: parameter %q has no default", cfg.Type, meta.Key)
			}
		}
	}
}

func TestRegistryIsolation(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r)
	r.Unregister(TypeLorenz)

	if !Default.Has(TypeLorenz) {
		t.Error("Unregistering on an isolated registry must not affect the default one")
	}
}

func TestControlPointPathCapability(t *testing.T) {
	gen := Default.Create(TypeSpline, nil)
	cp, ok := gen.(ControlPointPath)
	if !ok {
		t.Fatal("Spline generator should expose the control-point capability")
	}

	points := []geom.Point3D{{X: 0}, {X: 1}, {X: 2}}
	cp.SetControlPoints(points)
	if got := cp.GetControlPoints(); len(got) != 3 || got[2].X != 2 {
		t.Errorf("Control points not applied: %+v", got)
	}

	if _, ok := Default.Create(TypeCircular, nil).(ControlPointPath); ok {
		t.Error("Circular path should not expose the control-point capability")
	}
}
