package casefile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"complaint-assistant-be/internal/constant"
	"complaint-assistant-be/internal/entity"
	"complaint-assistant-be/internal/repository/contract"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sampleCase() *entity.SavedCase {
	return &entity.SavedCase{
		CustomerName:         "박진호",
		CustomerEmotionLabel: "😠 화남",
		CustomerSituation:    "보험금 지급이 3주째 지연되고 있습니다.",
		ExtraInfo:            "지급 심사 규정 제12조",
		ScriptContext:        "안녕하세요, 상담원입니다.",
		MessageList: []entity.ChatTurn{
			{Role: entity.RoleAssistant, Content: "안녕하세요, 상담원입니다."},
			{Role: entity.RoleUser, Content: "더 공손하게 바꿔 주세요."},
		},
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 20, 30, 0, kst)
	require.Equal(t, "박진호_240501-102030.json", Filename("박진호", at))
}

func TestFilenameConvertsToKST(t *testing.T) {
	// 2024-05-01 01:20:30 UTC is 10:20:30 in KST.
	at := time.Date(2024, 5, 1, 1, 20, 30, 0, time.UTC)
	require.Equal(t, "박진호_240501-102030.json", Filename("박진호", at))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 20, 30, 0, kst)
	repo := NewRepository(t.TempDir(), WithClock(fixedClock(at)))
	ctx := context.Background()

	saved := sampleCase()
	file, err := repo.Save(ctx, "홍상담_1234", "", saved)
	require.NoError(t, err)
	require.Equal(t, "박진호_240501-102030.json", file)

	loaded, err := repo.Load(ctx, "홍상담_1234", file)
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
}

func TestSaveKeepsKoreanReadable(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir, WithClock(fixedClock(time.Now())))

	file, err := repo.Save(context.Background(), "홍상담_1234", "", sampleCase())
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "홍상담_1234", file))
	require.NoError(t, err)
	require.Contains(t, string(raw), "박진호")
	require.NotContains(t, string(raw), `\u`)
}

func TestSaveReplacesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	clock := time.Date(2024, 5, 1, 10, 0, 0, 0, kst)
	repo := NewRepository(dir, WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	first, err := repo.Save(ctx, "홍상담_1234", "", sampleCase())
	require.NoError(t, err)

	clock = clock.Add(time.Minute)
	second, err := repo.Save(ctx, "홍상담_1234", first, sampleCase())
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	files, err := repo.List(ctx, "홍상담_1234")
	require.NoError(t, err)
	require.Equal(t, []string{second}, files)
}

func TestSaveWithMissingPreviousFile(t *testing.T) {
	repo := NewRepository(t.TempDir(), WithClock(fixedClock(time.Now())))

	// The previous file being gone already is not an error.
	_, err := repo.Save(context.Background(), "홍상담_1234", "없는파일_240101-000000.json", sampleCase())
	require.NoError(t, err)
}

func TestSaveDefaultsEmptyCustomerName(t *testing.T) {
	repo := NewRepository(t.TempDir(), WithClock(fixedClock(time.Now())))

	c := sampleCase()
	c.CustomerName = ""
	file, err := repo.Save(context.Background(), "홍상담_1234", "", c)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(file, constant.DefaultCustomerName+"_"))
}

func TestLoadMissingFile(t *testing.T) {
	repo := NewRepository(t.TempDir())

	_, err := repo.Load(context.Background(), "홍상담_1234", "박진호_240501-102030.json")
	require.ErrorIs(t, err, contract.ErrCaseFileNotFound)
}

func TestDeleteRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)
	ctx := context.Background()

	// Another agent's file must be unreachable through a crafted name.
	victim := filepath.Join(dir, "피해자_9999")
	require.NoError(t, os.MkdirAll(victim, 0o755))
	target := filepath.Join(victim, "박진호_240501-102030.json")
	require.NoError(t, os.WriteFile(target, []byte("[]"), 0o644))

	err := repo.Delete(ctx, "공격자_1111", "../피해자_9999/박진호_240501-102030.json")
	require.ErrorIs(t, err, contract.ErrInvalidFileName)
	require.FileExists(t, target)

	err = repo.Delete(ctx, "../피해자_9999", "박진호_240501-102030.json")
	require.ErrorIs(t, err, contract.ErrInvalidFileName)
	require.FileExists(t, target)
}

func TestLoadRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)
	ctx := context.Background()

	victim := filepath.Join(dir, "피해자_9999")
	require.NoError(t, os.MkdirAll(victim, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(victim, "박진호_240501-102030.json"), []byte("[]"), 0o644))

	for _, file := range []string{
		"../피해자_9999/박진호_240501-102030.json",
		"..",
		".",
		"",
		`..\피해자_9999\박진호_240501-102030.json`,
	} {
		_, err := repo.Load(ctx, "공격자_1111", file)
		require.ErrorIs(t, err, contract.ErrInvalidFileName, file)
	}
}

func TestSaveRejectsUnsafeNames(t *testing.T) {
	repo := NewRepository(t.TempDir(), WithClock(fixedClock(time.Now())))
	ctx := context.Background()

	c := sampleCase()
	c.CustomerName = "../탈출"
	_, err := repo.Save(ctx, "홍상담_1234", "", c)
	require.ErrorIs(t, err, contract.ErrInvalidFileName)

	c = sampleCase()
	_, err = repo.Save(ctx, "홍상담_1234", "../피해자_9999/박진호_240501-102030.json", c)
	require.ErrorIs(t, err, contract.ErrInvalidFileName)

	_, err = repo.Save(ctx, "홍상담/../1234", "", sampleCase())
	require.ErrorIs(t, err, contract.ErrInvalidFileName)
}

func TestDeleteMissingFile(t *testing.T) {
	repo := NewRepository(t.TempDir())

	err := repo.Delete(context.Background(), "홍상담_1234", "박진호_240501-102030.json")
	require.ErrorIs(t, err, contract.ErrCaseFileNotFound)
}

func TestDeleteRemovesFile(t *testing.T) {
	repo := NewRepository(t.TempDir(), WithClock(fixedClock(time.Now())))
	ctx := context.Background()

	file, err := repo.Save(ctx, "홍상담_1234", "", sampleCase())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "홍상담_1234", file))

	files, err := repo.List(ctx, "홍상담_1234")
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)
	ctx := context.Background()

	folder := filepath.Join(dir, "홍상담_1234")
	require.NoError(t, os.MkdirAll(folder, 0o755))

	old := filepath.Join(folder, "김철수_240401-090000.json")
	recent := filepath.Join(folder, "박진호_240501-102030.json")
	require.NoError(t, os.WriteFile(old, []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(recent, []byte("[]"), 0o644))

	// Directory listing order is mtime, not name.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	files, err := repo.List(ctx, "홍상담_1234")
	require.NoError(t, err)
	require.Equal(t, []string{"박진호_240501-102030.json", "김철수_240401-090000.json"}, files)
}

func TestListIgnoresNonJSON(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)

	folder := filepath.Join(dir, "홍상담_1234")
	require.NoError(t, os.MkdirAll(folder, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "notes.txt"), []byte("x"), 0o644))

	files, err := repo.List(context.Background(), "홍상담_1234")
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestCustomerNameFromFile(t *testing.T) {
	// The name is the prefix before the first underscore, so an underscore
	// inside a customer name is cut the same way everywhere.
	require.Equal(t, "박진호", CustomerNameFromFile("박진호_240501-102030.json"))
	require.Equal(t, "김", CustomerNameFromFile("김_철수_240501-102030.json"))
	require.Equal(t, constant.DefaultCustomerName, CustomerNameFromFile("legacy.json"))
}

func TestLoadLegacyArrayFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)

	folder := filepath.Join(dir, "홍상담_1234")
	require.NoError(t, os.MkdirAll(folder, 0o755))
	legacy := `[
        {"role": "ai", "content": "안녕하세요."},
        {"role": "user", "content": "질문입니다."}
    ]`
	require.NoError(t, os.WriteFile(filepath.Join(folder, "legacy.json"), []byte(legacy), 0o644))

	loaded, err := repo.Load(context.Background(), "홍상담_1234", "legacy.json")
	require.NoError(t, err)
	require.Equal(t, constant.DefaultCustomerName, loaded.CustomerName)
	require.Empty(t, loaded.ScriptContext)
	require.Len(t, loaded.MessageList, 2)
	require.Equal(t, entity.RoleAssistant, loaded.MessageList[0].Role)
	require.Equal(t, entity.RoleUser, loaded.MessageList[1].Role)
}

func TestLoadObjectWithoutNameUsesFilename(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)

	folder := filepath.Join(dir, "홍상담_1234")
	require.NoError(t, os.MkdirAll(folder, 0o755))
	body := `{"message_list": [{"role": "user", "content": "질문"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(folder, "박진호_240501-102030.json"), []byte(body), 0o644))

	loaded, err := repo.Load(context.Background(), "홍상담_1234", "박진호_240501-102030.json")
	require.NoError(t, err)
	require.Equal(t, "박진호", loaded.CustomerName)
}

func TestLoadCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(dir)

	folder := filepath.Join(dir, "홍상담_1234")
	require.NoError(t, os.MkdirAll(folder, 0o755))

	cases := map[string]string{
		"scalar.json":       `"just a string"`,
		"empty.json":        ``,
		"missing_keys.json": `[{"role": "user"}]`,
		"bad_role.json":     `[{"role": "robot", "content": "x"}]`,
		"truncated.json":    `{"message_list": [`,
	}
	for file, body := range cases {
		require.NoError(t, os.WriteFile(filepath.Join(folder, file), []byte(body), 0o644))
		_, err := repo.Load(context.Background(), "홍상담_1234", file)
		require.ErrorIs(t, err, contract.ErrCaseFileCorrupt, file)
	}
}

func TestLegacyLoadSaveRoundTrip(t *testing.T) {
	// Loading a legacy file and saving it again must produce the current
	// object schema without losing the turns.
	dir := t.TempDir()
	repo := NewRepository(dir, WithClock(fixedClock(time.Now())))
	ctx := context.Background()

	folder := filepath.Join(dir, "홍상담_1234")
	require.NoError(t, os.MkdirAll(folder, 0o755))
	legacy := `[{"role": "ai", "content": "안녕하세요."}]`
	require.NoError(t, os.WriteFile(filepath.Join(folder, "legacy.json"), []byte(legacy), 0o644))

	loaded, err := repo.Load(ctx, "홍상담_1234", "legacy.json")
	require.NoError(t, err)

	file, err := repo.Save(ctx, "홍상담_1234", "legacy.json", loaded)
	require.NoError(t, err)

	again, err := repo.Load(ctx, "홍상담_1234", file)
	require.NoError(t, err)
	require.Equal(t, loaded, again)
}
