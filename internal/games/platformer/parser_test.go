package platformer

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

func TestParse(t *testing.T) {
	parser := NewParser(map[rune]Factory{'@': NewPlayer})
	level := parser.Parse([]string{"@ ", " x"})

	if level.Width() != 2 || level.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 2x2", level.Width(), level.Height())
	}

	actors := level.Actors()
	if len(actors) != 1 {
		t.Fatalf("len(Actors()) = %d, expected 1", len(actors))
	}
	if actors[0].Kind() != KindPlayer {
		t.Errorf("Kind() = %v, expected player", actors[0].Kind())
	}
	if actors[0].Pos() != core.V(0, -0.5) {
		t.Errorf("Pos() = %v, expected (0, -0.5)", actors[0].Pos())
	}

	if level.Cell(1, 1) != KindWall {
		t.Errorf("Cell(1, 1) = %v, expected wall", level.Cell(1, 1))
	}
	// Actor cells are empty terrain
	if level.Cell(0, 0) != KindNone {
		t.Errorf("Cell(0, 0) = %v, expected none", level.Cell(0, 0))
	}
}

func TestObstacleFromSymbol(t *testing.T) {
	parser := NewParser(nil)

	tests := []struct {
		symbol   rune
		expected Kind
		ok       bool
	}{
		{'x', KindWall, true},
		{'!', KindLava, true},
		{' ', KindNone, false},
		{'@', KindNone, false},
		{'X', KindNone, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.symbol), func(t *testing.T) {
			kind, ok := parser.ObstacleFromSymbol(tc.symbol)
			if kind != tc.expected || ok != tc.ok {
				t.Errorf("ObstacleFromSymbol(%q) = (%v, %v), expected (%v, %v)",
					tc.symbol, kind, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestActorFromSymbol(t *testing.T) {
	parser := NewParser(DefaultDictionary(rand.New(rand.NewSource(1))))

	tests := []struct {
		symbol rune
		kind   Kind
	}{
		{'@', KindPlayer},
		{'o', KindCoin},
		{'h', KindFireball},
		{'=', KindFireball},
		{'v', KindFireball},
		{'|', KindFireball},
		{'f', KindFireball},
	}

	for _, tc := range tests {
		t.Run(string(tc.symbol), func(t *testing.T) {
			factory, ok := parser.ActorFromSymbol(tc.symbol)
			if !ok {
				t.Fatalf("ActorFromSymbol(%q) not found", tc.symbol)
			}
			if got := factory(core.V(1, 1)).Kind(); got != tc.kind {
				t.Errorf("factory kind = %v, expected %v", got, tc.kind)
			}
		})
	}

	if _, ok := parser.ActorFromSymbol('x'); ok {
		t.Error("'x' is terrain, not an actor")
	}
	if _, ok := parser.ActorFromSymbol('?'); ok {
		t.Error("unknown symbol should not resolve")
	}
}

func TestParserCopiesDictionary(t *testing.T) {
	dict := map[rune]Factory{'@': NewPlayer}
	parser := NewParser(dict)

	dict['o'] = NewHorizontalFireball
	delete(dict, '@')

	if _, ok := parser.ActorFromSymbol('@'); !ok {
		t.Error("parser lost '@' after caller deleted it")
	}
	if _, ok := parser.ActorFromSymbol('o'); ok {
		t.Error("parser picked up 'o' added after construction")
	}
}

func TestCreateActorsSkipsNil(t *testing.T) {
	parser := NewParser(map[rune]Factory{
		'a': nil,
		'b': func(core.Vec) *Actor { return nil },
		'c': BaseActor,
	})

	actors := parser.CreateActors([]string{"abc", "cba"})

	if len(actors) != 2 {
		t.Fatalf("len(CreateActors()) = %d, expected 2", len(actors))
	}
	if actors[0].Pos() != core.V(2, 0) || actors[1].Pos() != core.V(0, 1) {
		t.Errorf("positions = %v %v, expected (2, 0) (0, 1)", actors[0].Pos(), actors[1].Pos())
	}
}

func TestCreateGridMultibyte(t *testing.T) {
	parser := NewParser(nil)
	grid := parser.CreateGrid([]string{"é x", "!"})

	if len(grid[0]) != 3 {
		t.Fatalf("len(row 0) = %d, expected 3 runes", len(grid[0]))
	}
	if grid[0][2] != KindWall {
		t.Errorf("grid[0][2] = %v, expected wall", grid[0][2])
	}
	if len(grid[1]) != 1 || grid[1][0] != KindLava {
		t.Errorf("row 1 = %v, expected [lava]", grid[1])
	}
}

func TestFactoryByName(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		variant Variant
	}{
		{"player", VariantPlayer},
		{"coin", VariantCoin},
		{"fireball", VariantHorizontalFireball},
		{"horizontal_fireball", VariantHorizontalFireball},
		{"vertical_fireball", VariantVerticalFireball},
		{"fire_rain", VariantFireRain},
		{"actor", VariantActor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			factory, err := FactoryByName(tc.name, rng)
			if err != nil {
				t.Fatalf("FactoryByName(%q) error: %v", tc.name, err)
			}
			if got := factory(core.Vec{}).Variant(); got != tc.variant {
				t.Errorf("variant = %v, expected %v", got, tc.variant)
			}
		})
	}

	if _, err := FactoryByName("dragon", rng); !errors.Is(err, ErrUnknownActor) {
		t.Errorf("FactoryByName(dragon) error = %v, expected ErrUnknownActor", err)
	}
}

func TestBuildLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("legend extends dictionary", func(t *testing.T) {
		def := levels.Level{
			ID:     "legend",
			Plan:   []string{"@ r", "xxx"},
			Legend: map[rune]string{'r': "fire_rain"},
		}

		level, err := BuildLevel(def, 2, rng)
		if err != nil {
			t.Fatalf("BuildLevel() error: %v", err)
		}
		actors := level.Actors()
		if len(actors) != 2 || actors[1].Variant() != VariantFireRain {
			t.Errorf("Actors() = %v, expected player and fire rain", actors)
		}
		if level.FinishDelay != 2 {
			t.Errorf("FinishDelay = %v, expected 2", level.FinishDelay)
		}
	})

	t.Run("level finish delay wins", func(t *testing.T) {
		def := levels.Level{ID: "delay", Plan: []string{"@"}, FinishDelay: 3}
		level, err := BuildLevel(def, 1, rng)
		if err != nil {
			t.Fatalf("BuildLevel() error: %v", err)
		}
		if level.FinishDelay != 3 {
			t.Errorf("FinishDelay = %v, expected 3", level.FinishDelay)
		}
	})

	t.Run("empty plan", func(t *testing.T) {
		_, err := BuildLevel(levels.Level{ID: "empty"}, 1, rng)
		if !errors.Is(err, ErrEmptyPlan) {
			t.Errorf("error = %v, expected ErrEmptyPlan", err)
		}
	})

	t.Run("unknown legend name", func(t *testing.T) {
		def := levels.Level{ID: "bad", Plan: []string{"@"}, Legend: map[rune]string{'d': "dragon"}}
		_, err := BuildLevel(def, 1, rng)
		if !errors.Is(err, ErrUnknownActor) {
			t.Errorf("error = %v, expected ErrUnknownActor", err)
		}
	})
}

func TestBuiltinLevelsBuild(t *testing.T) {
	catalog, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}

	for _, def := range catalog {
		t.Run(def.ID, func(t *testing.T) {
			level, err := BuildLevel(def, DefaultFinishDelay, rand.New(rand.NewSource(1)))
			if err != nil {
				t.Fatalf("BuildLevel() error: %v", err)
			}
			if level.Player() == nil {
				t.Error("builtin level has no player")
			}
			if level.NoMoreActors(KindCoin) {
				t.Error("builtin level has no coins")
			}
		})
	}
}
