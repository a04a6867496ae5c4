package manager_test

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/internal/models"
	"pse_restaurant_admin/internal/view"
)

// fakeCollection is an in-memory remote for driving the manager without HTTP.
type fakeCollection[T any] struct {
	mu      sync.Mutex
	records []T

	createFn func(draft T) (T, error)
	updateFn func(id int64, draft T) (T, error)

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	// enteredCreate/releaseCreate, when set, make the first Create block
	// until released.
	enteredCreate chan struct{}
	releaseCreate chan struct{}
}

func (f *fakeCollection[T]) List(ctx context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.records, nil
}

func (f *fakeCollection[T]) Create(ctx context.Context, draft T) (T, error) {
	f.mu.Lock()
	f.createCalls++
	first := f.createCalls == 1
	f.mu.Unlock()

	if f.enteredCreate != nil && first {
		close(f.enteredCreate)
		<-f.releaseCreate
	}
	if f.createFn != nil {
		return f.createFn(draft)
	}
	return draft, nil
}

func (f *fakeCollection[T]) Update(ctx context.Context, id int64, draft T) (T, error) {
	f.mu.Lock()
	f.updateCalls++
	f.mu.Unlock()
	if f.updateFn != nil {
		return f.updateFn(id, draft)
	}
	return draft, nil
}

func (f *fakeCollection[T]) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	return nil
}

type fakeUploader struct {
	url      string
	filename string
	content  string
	calls    int
}

func (f *fakeUploader) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	f.calls++
	f.filename = filename
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	f.content = string(data)
	return f.url, nil
}

func itemConfig() manager.Config[models.Item] {
	return manager.Config[models.Item]{
		Name:       "item",
		PageSize:   10,
		Key:        func(i models.Item) int64 { return i.ID },
		SearchText: func(i models.Item) string { return i.Name },
		Status:     func(i models.Item) string { return string(i.Type) },
		NewDraft:   func() models.Item { return models.Item{Type: models.ItemTypeFood} },
		SetImageURL: func(draft *models.Item, url string) {
			draft.ImageURL = &url
		},
	}
}

func validItem(name string) models.Item {
	return models.Item{Name: name, Type: models.ItemTypeFood, Price: 4.5}
}

func TestManager_LoadAndView(t *testing.T) {
	remote := &fakeCollection[models.Item]{records: []models.Item{
		{ID: 1, Name: "Fish Amok", Type: models.ItemTypeFood},
		{ID: 2, Name: "Iced Coffee", Type: models.ItemTypeDrink},
		{ID: 3, Name: "Beef Lok Lak", Type: models.ItemTypeFood},
	}}
	m := manager.New(itemConfig(), remote, nil, nil)

	require.NoError(t, m.Load(context.Background()))
	assert.Equal(t, 1, remote.listCalls)
	assert.Equal(t, 3, m.Mirror().Len())

	page := m.View(view.Query{Status: "food", Page: 1})
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Fish Amok", page.Items[0].Name)
	assert.Equal(t, "Beef Lok Lak", page.Items[1].Name)
}

func TestManager_SubmitCreateAdoptsServerRecord(t *testing.T) {
	remote := &fakeCollection[models.Item]{
		createFn: func(draft models.Item) (models.Item, error) {
			draft.ID = 101
			draft.Name = strings.TrimSpace(draft.Name)
			return draft, nil
		},
	}
	m := manager.New(itemConfig(), remote, nil, nil)

	m.StartCreate()
	m.SetDraft(validItem("  Num Pang  "))

	saved, err := m.Submit(context.Background(), nil)
	require.NoError(t, err)

	// The mirror holds the server's canonical version, not the local draft.
	assert.Equal(t, int64(101), saved.ID)
	assert.Equal(t, "Num Pang", saved.Name)
	got, ok := m.Mirror().Get(101)
	require.True(t, ok)
	assert.Equal(t, saved, got)

	// The session reset to a fresh draft.
	_, editing := m.Editing()
	assert.False(t, editing)
	assert.Equal(t, models.ItemTypeFood, m.Draft().Type)
	assert.Empty(t, m.Draft().Name)
}

func TestManager_SubmitInvalidDraftMakesNoCall(t *testing.T) {
	remote := &fakeCollection[models.Item]{}
	m := manager.New(itemConfig(), remote, nil, nil)

	m.StartCreate()
	m.SetDraft(models.Item{}) // name and type missing

	_, err := m.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, manager.ErrDraftInvalid)
	assert.Zero(t, remote.createCalls)

	// The draft survives for the operator to fix.
	assert.Equal(t, models.Item{}, m.Draft())
}

func TestManager_SubmitUpdateReplacesInPlace(t *testing.T) {
	remote := &fakeCollection[models.Item]{
		records: []models.Item{
			{ID: 1, Name: "Fish Amok", Type: models.ItemTypeFood, Price: 6},
			{ID: 2, Name: "Iced Coffee", Type: models.ItemTypeDrink, Price: 2},
			{ID: 3, Name: "Beef Lok Lak", Type: models.ItemTypeFood, Price: 7},
		},
		updateFn: func(id int64, draft models.Item) (models.Item, error) {
			draft.ID = id
			return draft, nil
		},
	}
	m := manager.New(itemConfig(), remote, nil, nil)
	require.NoError(t, m.Load(context.Background()))

	require.NoError(t, m.StartEdit(2))
	draft := m.Draft()
	assert.Equal(t, "Iced Coffee", draft.Name)

	draft.Price = 2.5
	m.SetDraft(draft)

	saved, err := m.Submit(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, remote.updateCalls)
	assert.Zero(t, remote.createCalls)
	assert.Equal(t, 2.5, saved.Price)

	// Position in the mirror is preserved.
	all := m.Mirror().All()
	require.Len(t, all, 3)
	assert.Equal(t, int64(2), all[1].ID)
	assert.Equal(t, 2.5, all[1].Price)
}

func TestManager_StartEditUnknownID(t *testing.T) {
	m := manager.New(itemConfig(), &fakeCollection[models.Item]{}, nil, nil)

	err := m.StartEdit(99)
	assert.ErrorIs(t, err, manager.ErrNotInMirror)
}

func TestManager_CancelDiscardsEdit(t *testing.T) {
	remote := &fakeCollection[models.Item]{records: []models.Item{validItemWithID(5, "Croissant")}}
	m := manager.New(itemConfig(), remote, nil, nil)
	require.NoError(t, m.Load(context.Background()))

	require.NoError(t, m.StartEdit(5))
	m.Cancel()

	_, editing := m.Editing()
	assert.False(t, editing)
	assert.Empty(t, m.Draft().Name)
}

func validItemWithID(id int64, name string) models.Item {
	item := validItem(name)
	item.ID = id
	return item
}

func TestManager_DeleteDeclinedIsNoop(t *testing.T) {
	remote := &fakeCollection[models.Item]{records: []models.Item{validItemWithID(1, "Baguette")}}
	m := manager.New(itemConfig(), remote, nil, nil)
	require.NoError(t, m.Load(context.Background()))

	err := m.Delete(context.Background(), manager.StaticPrompter{Confirmed: false}, 1)
	assert.ErrorIs(t, err, manager.ErrAborted)
	assert.Zero(t, remote.deleteCalls)
	assert.Equal(t, 1, m.Mirror().Len())
}

func TestManager_DeleteConfirmedRemovesAndResetsEdit(t *testing.T) {
	remote := &fakeCollection[models.Item]{records: []models.Item{
		validItemWithID(1, "Baguette"),
		validItemWithID(2, "Croissant"),
	}}
	m := manager.New(itemConfig(), remote, nil, nil)
	require.NoError(t, m.Load(context.Background()))
	require.NoError(t, m.StartEdit(2))

	err := m.Delete(context.Background(), manager.StaticPrompter{Confirmed: true}, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, remote.deleteCalls)
	assert.Equal(t, 1, m.Mirror().Len())

	// Deleting the record under edit abandons the edit session.
	_, editing := m.Editing()
	assert.False(t, editing)
}

func TestManager_SubmitUploadsImageFirst(t *testing.T) {
	var received models.Item
	remote := &fakeCollection[models.Item]{
		createFn: func(draft models.Item) (models.Item, error) {
			received = draft
			draft.ID = 7
			return draft, nil
		},
	}
	uploads := &fakeUploader{url: "/uploads/amok-1.png"}
	m := manager.New(itemConfig(), remote, uploads, nil)

	m.StartCreate()
	m.SetDraft(validItem("Fish Amok"))

	saved, err := m.Submit(context.Background(), &manager.ImageAttachment{
		Filename: "amok.png",
		Content:  strings.NewReader("png bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, uploads.calls)
	assert.Equal(t, "amok.png", uploads.filename)
	assert.Equal(t, "png bytes", uploads.content)

	// The uploaded URL was stitched into the draft before the create call.
	require.NotNil(t, received.ImageURL)
	assert.Equal(t, "/uploads/amok-1.png", *received.ImageURL)
	require.NotNil(t, saved.ImageURL)
	assert.Equal(t, "/uploads/amok-1.png", *saved.ImageURL)
}

func TestManager_ConcurrentCreatesKeepTheirDrafts(t *testing.T) {
	var idMu sync.Mutex
	nextID := int64(100)
	remote := &fakeCollection[models.Item]{
		enteredCreate: make(chan struct{}),
		releaseCreate: make(chan struct{}),
		createFn: func(draft models.Item) (models.Item, error) {
			idMu.Lock()
			nextID++
			draft.ID = nextID
			idMu.Unlock()
			return draft, nil
		},
	}
	m := manager.New(itemConfig(), remote, nil, nil)

	type result struct {
		saved models.Item
		err   error
	}
	firstDone := make(chan result, 1)
	go func() {
		saved, err := m.SubmitNew(context.Background(), validItem("Customer A Dish"), nil)
		firstDone <- result{saved, err}
	}()

	// While the first create is held open at the backend, a second request
	// dispatches its own draft. Neither is refused and neither payload leaks
	// into the other's call.
	<-remote.enteredCreate
	second, err := m.SubmitNew(context.Background(), validItem("Customer B Dish"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Customer B Dish", second.Name)

	close(remote.releaseCreate)
	first := <-firstDone
	require.NoError(t, first.err)
	assert.Equal(t, "Customer A Dish", first.saved.Name)
	assert.Equal(t, 2, remote.createCalls)
	assert.Equal(t, 2, m.Mirror().Len())
}

func TestManager_SubmitUpdateAdoptsServerRecord(t *testing.T) {
	remote := &fakeCollection[models.Item]{
		records: []models.Item{
			validItemWithID(1, "Baguette"),
			validItemWithID(2, "Croissant"),
		},
		updateFn: func(id int64, draft models.Item) (models.Item, error) {
			draft.ID = id
			draft.Name = strings.TrimSpace(draft.Name)
			return draft, nil
		},
	}
	m := manager.New(itemConfig(), remote, nil, nil)
	require.NoError(t, m.Load(context.Background()))

	saved, err := m.SubmitUpdate(context.Background(), 2, validItem(" Pain au Chocolat "), nil)
	require.NoError(t, err)
	assert.Equal(t, "Pain au Chocolat", saved.Name)

	all := m.Mirror().All()
	require.Len(t, all, 2)
	assert.Equal(t, int64(2), all[1].ID)
	assert.Equal(t, "Pain au Chocolat", all[1].Name, "server version replaces the record in place")
}

func TestManager_SubmitUpdateUnknownID(t *testing.T) {
	remote := &fakeCollection[models.Item]{}
	m := manager.New(itemConfig(), remote, nil, nil)

	_, err := m.SubmitUpdate(context.Background(), 99, validItem("Ghost"), nil)
	assert.ErrorIs(t, err, manager.ErrNotInMirror)
	assert.Zero(t, remote.updateCalls)
}

func TestManager_LoadedAfterEmptyFetch(t *testing.T) {
	remote := &fakeCollection[models.Item]{}
	m := manager.New(itemConfig(), remote, nil, nil)

	assert.False(t, m.Loaded())
	require.NoError(t, m.Load(context.Background()))
	assert.True(t, m.Loaded(), "an empty backend collection still counts as loaded")
	assert.Zero(t, m.Mirror().Len())
}

func TestManager_SecondSubmitWhileFirstInFlight(t *testing.T) {
	remote := &fakeCollection[models.Item]{
		enteredCreate: make(chan struct{}),
		releaseCreate: make(chan struct{}),
	}
	m := manager.New(itemConfig(), remote, nil, nil)

	m.StartCreate()
	m.SetDraft(validItem("Kuy Teav"))

	done := make(chan error, 1)
	go func() {
		_, err := m.Submit(context.Background(), nil)
		done <- err
	}()

	<-remote.enteredCreate
	_, err := m.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, manager.ErrSubmitInFlight)

	close(remote.releaseCreate)
	require.NoError(t, <-done)
	assert.Equal(t, 1, remote.createCalls)
}
