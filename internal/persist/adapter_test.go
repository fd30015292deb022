package persist

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/terpdex/terpdex/internal/progress"
	"github.com/terpdex/terpdex/internal/store"
)

var fixedNow = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// flakyKV wraps a KV and fails the operations it is told to.
type flakyKV struct {
	store.KV
	failGet bool
	failSet bool
	failDel bool
}

var errDisk = errors.New("disk full")

func (f *flakyKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failGet {
		return "", false, errDisk
	}
	return f.KV.Get(ctx, key)
}

func (f *flakyKV) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errDisk
	}
	return f.KV.Set(ctx, key, value)
}

func (f *flakyKV) Delete(ctx context.Context, key string) error {
	if f.failDel {
		return errDisk
	}
	return f.KV.Delete(ctx, key)
}

func sampleState() progress.State {
	st := progress.Default()
	st.XP = 340
	st.BestStreak = 7
	st.TotalCorrect = 31
	st.Achievements = progress.NewSet("first_correct", "ten_correct", "perfect_streak_5")
	st.ModesUsed = progress.NewSet("aroma", "random")
	st.TopicCorrect = map[string]int{"Myrcene": 12, "Pinene": 0}
	return st
}

func TestLoad_MissingKeyReturnsDefault(t *testing.T) {
	a := New(store.NewMemoryKV())
	st := a.Load(context.Background())
	assert.True(t, st.Equal(progress.Default()))
	assert.Nil(t, st.LastPlayed)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	a := New(store.NewMemoryKV(), WithClock(clock))

	saved, err := a.Save(ctx, sampleState())
	require.NoError(t, err)
	require.NotNil(t, saved.LastPlayed)
	assert.True(t, saved.LastPlayed.Equal(fixedNow))

	loaded := a.Load(ctx)
	assert.True(t, loaded.Equal(sampleState()), "loaded %+v", loaded)
	require.NotNil(t, loaded.LastPlayed)
	assert.True(t, loaded.LastPlayed.Equal(fixedNow))
	assert.Equal(t, 0, loaded.TopicCorrect["Pinene"])
	_, attempted := loaded.TopicCorrect["Pinene"]
	assert.True(t, attempted, "zero entries survive the round trip")
}

func TestSaveLoad_EmptyCollections(t *testing.T) {
	ctx := context.Background()
	a := New(store.NewMemoryKV())

	_, err := a.Save(ctx, progress.Default())
	require.NoError(t, err)

	loaded := a.Load(ctx)
	assert.Equal(t, 0, loaded.ModesUsed.Len())
	assert.Equal(t, 0, loaded.Achievements.Len())
	assert.NotNil(t, loaded.TopicCorrect)
	assert.Empty(t, loaded.TopicCorrect)
}

func TestSave_DoesNotMutateInput(t *testing.T) {
	st := sampleState()
	_, err := New(store.NewMemoryKV(), WithClock(clock)).Save(context.Background(), st)
	require.NoError(t, err)
	assert.Nil(t, st.LastPlayed)
}

func TestSave_WireShape(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	a := New(kv, WithClock(clock))

	st := sampleState()
	st.ModesUsed = progress.NewSet("menu", "aroma", "menu")
	_, err := a.Save(ctx, st)
	require.NoError(t, err)

	raw, ok, err := kv.Get(ctx, DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)

	var wire map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &wire))
	assert.Equal(t, float64(340), wire["xp"])
	assert.Equal(t, []any{"aroma", "menu"}, wire["modesUsed"])
	assert.Equal(t, []any{"first_correct", "perfect_streak_5", "ten_correct"}, wire["achievements"])
	assert.Equal(t, map[string]any{"Myrcene": float64(12), "Pinene": float64(0)}, wire["terpeneCorrect"])
	assert.Equal(t, "2024-05-01T12:30:00Z", wire["lastPlayed"])
}

func TestLoad_CorruptData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"xp": 10,`},
		{"wrong type", `{"xp": "lots", "bestStreak": 0, "totalCorrect": 0}`},
		{"negative xp", `{"xp": -5, "bestStreak": 0, "totalCorrect": 0}`},
		{"missing required", `{"achievements": []}`},
		{"bad topic count", `{"xp": 1, "bestStreak": 0, "totalCorrect": 0, "terpeneCorrect": {"Myrcene": "x"}}`},
		{"array root", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := store.NewMemoryKV()
			require.NoError(t, kv.Set(ctx, DefaultKey, tt.raw))

			core, logs := observer.New(zapcore.WarnLevel)
			a := New(kv, WithLogger(zap.New(core)))

			st := a.Load(ctx)
			assert.True(t, st.Equal(progress.Default()))
			assert.Equal(t, 1, logs.FilterMessageSnippet("corrupt record").Len())
		})
	}
}

func TestLoad_AcceptsLegacyFields(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	raw := `{"xp": 120, "totalCorrect": 11, "bestStreak": 4, "achievements": ["first_correct","first_correct"],
		"modesUsed": ["aroma"], "terpeneCorrect": {"Limonene": 3}, "totalSessions": 11,
		"lastPlayed": "2023-11-02T08:00:00.000Z"}`
	require.NoError(t, kv.Set(ctx, DefaultKey, raw))

	st := New(kv).Load(ctx)
	assert.Equal(t, 120, st.XP)
	assert.Equal(t, 1, st.Achievements.Len())
	assert.True(t, st.ModesUsed.Has("aroma"))
	assert.Equal(t, 3, st.TopicCorrect["Limonene"])
	require.NotNil(t, st.LastPlayed)
	assert.Equal(t, 2023, st.LastPlayed.Year())
}

func TestLoad_StorageFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	a := New(&flakyKV{KV: store.NewMemoryKV(), failGet: true}, WithLogger(zap.New(core)))

	st := a.Load(context.Background())
	assert.True(t, st.Equal(progress.Default()))
	assert.Equal(t, 1, logs.FilterMessageSnippet("storage unavailable").Len())
}

func TestSave_FailureKeepsPriorValue(t *testing.T) {
	ctx := context.Background()
	kv := &flakyKV{KV: store.NewMemoryKV()}
	a := New(kv, WithClock(clock))

	first := sampleState()
	_, err := a.Save(ctx, first)
	require.NoError(t, err)

	kv.failSet = true
	next := first.Clone()
	next.XP = 9999
	got, err := a.Save(ctx, next)
	require.ErrorIs(t, err, errDisk)
	assert.Equal(t, 9999, got.XP)
	assert.Nil(t, got.LastPlayed, "failed save must not stamp LastPlayed")

	kv.failSet = false
	assert.Equal(t, 340, a.Load(ctx).XP)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	a := New(kv)

	_, err := a.Save(ctx, sampleState())
	require.NoError(t, err)
	require.NoError(t, a.Reset(ctx))

	_, ok, err := kv.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, a.Load(ctx).Equal(progress.Default()))
}

func TestReset_Failure(t *testing.T) {
	a := New(&flakyKV{KV: store.NewMemoryKV(), failDel: true})
	assert.ErrorIs(t, a.Reset(context.Background()), errDisk)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	kv := &flakyKV{KV: store.NewMemoryKV()}
	a := New(kv, WithClock(clock))

	rec, err := a.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.XP)
	assert.Empty(t, rec.Achievements)
	assert.NotNil(t, rec.Achievements)

	_, err = a.Save(ctx, sampleState())
	require.NoError(t, err)
	rec, err = a.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, 340, rec.XP)
	assert.Equal(t, []string{"aroma", "random"}, rec.ModesUsed)

	require.NoError(t, kv.Set(ctx, DefaultKey, "garbage"))
	_, err = a.Export(ctx)
	assert.Error(t, err)

	kv.failGet = true
	_, err = a.Export(ctx)
	assert.ErrorIs(t, err, errDisk)
}

func TestWithKey(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	a := New(kv, WithKey("profile:alt"))
	_, err := a.Save(ctx, sampleState())
	require.NoError(t, err)

	_, ok, _ := kv.Get(ctx, DefaultKey)
	assert.False(t, ok)
	_, ok, _ = kv.Get(ctx, "profile:alt")
	assert.True(t, ok)
}

func TestAdapter_SQLiteBacked(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "persist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	a := New(s.KV(), WithClock(clock))
	_, err = a.Save(ctx, sampleState())
	require.NoError(t, err)

	loaded := New(s.KV()).Load(ctx)
	assert.True(t, loaded.Equal(sampleState()))
}
