package adminclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/damataprodutora/portfolio-backend/internal/portfolio"
)

var (
	ErrSessionExpired     = errors.New("session expired")
	ErrNoImagesSelected   = errors.New("a new project needs at least one image")
	ErrDeleteNotConfirmed = errors.New("delete was not confirmed")
	ErrNoForm             = errors.New("no form in progress")
)

// State is the controller's form state.
type State int

const (
	StateIdle State = iota
	StateCreating
	StateEditing
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCreating:
		return "creating"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Form carries the user's input for a create or edit submission.
type Form struct {
	Title       string
	Client      string
	Category    string
	Description string
	VideoID     string
	NewImages   []Upload
}

// Controller mirrors the admin panel's behavior: it owns the in-memory project
// list and pushes the full list to the server after every successful mutation.
// A failed save leaves the in-memory mutation in place; memory and file can
// diverge until the next successful save or reload.
type Controller struct {
	client *Client

	projects  []portfolio.Project
	state     State
	editIndex int
	lastID    int64

	now func() time.Time
}

func NewController(client *Client) *Controller {
	return &Controller{
		client:    client,
		projects:  []portfolio.Project{},
		state:     StateIdle,
		editIndex: -1,
		now:       time.Now,
	}
}

// LoadInitial replaces the in-memory list with the server snapshot.
func (ctl *Controller) LoadInitial(ctx context.Context) error {
	projects, err := ctl.client.FetchPortfolio(ctx)
	if err != nil {
		return err
	}
	ctl.projects = projects
	return nil
}

// Projects returns a copy of the current in-memory list.
func (ctl *Controller) Projects() []portfolio.Project {
	out := make([]portfolio.Project, len(ctl.projects))
	copy(out, ctl.projects)
	return out
}

func (ctl *Controller) State() State {
	return ctl.state
}

// BeginCreate opens an empty form.
func (ctl *Controller) BeginCreate() {
	ctl.state = StateCreating
	ctl.editIndex = -1
}

// BeginEdit opens the form populated from the project at index.
func (ctl *Controller) BeginEdit(index int) (portfolio.Project, error) {
	if index < 0 || index >= len(ctl.projects) {
		return portfolio.Project{}, fmt.Errorf("no project at index %d", index)
	}
	ctl.state = StateEditing
	ctl.editIndex = index
	return ctl.projects[index], nil
}

// Cancel abandons the form.
func (ctl *Controller) Cancel() {
	ctl.state = StateIdle
	ctl.editIndex = -1
}

// Submit finishes the open form. Create requires at least one new image and
// fails locally, before any network call, when none is selected. Edit without
// new images carries the previous imageUrls over unchanged; with new images
// the uploaded set fully replaces the old one.
func (ctl *Controller) Submit(ctx context.Context, form Form) error {
	prior := ctl.state
	if prior != StateCreating && prior != StateEditing {
		return ErrNoForm
	}
	if prior == StateEditing && (ctl.editIndex < 0 || ctl.editIndex >= len(ctl.projects)) {
		// The edited project is gone, e.g. deleted out from under the form.
		ctl.Cancel()
		return ErrNoForm
	}

	if prior == StateCreating && len(form.NewImages) == 0 {
		return ErrNoImagesSelected
	}

	ctl.state = StateSubmitting

	var imageURLs []string
	if len(form.NewImages) > 0 {
		urls, err := ctl.client.UploadImages(ctx, form.NewImages)
		if err != nil {
			ctl.state = prior
			return err
		}
		imageURLs = urls
	} else {
		imageURLs = ctl.projects[ctl.editIndex].ImageURLs
	}

	if prior == StateEditing {
		p := ctl.projects[ctl.editIndex]
		p.Title = form.Title
		p.Client = form.Client
		p.Category = form.Category
		p.Description = form.Description
		p.VideoID = form.VideoID
		p.ImageURLs = imageURLs
		ctl.projects[ctl.editIndex] = p
	} else {
		created := portfolio.Project{
			ID:          ctl.nextID(),
			Title:       form.Title,
			Client:      form.Client,
			Category:    form.Category,
			Description: form.Description,
			VideoID:     form.VideoID,
			ImageURLs:   imageURLs,
		}
		ctl.projects = append([]portfolio.Project{created}, ctl.projects...)
	}

	if err := ctl.client.SavePortfolio(ctx, ctl.projects); err != nil {
		// The in-memory mutation stands; only the push failed.
		ctl.state = prior
		return err
	}

	ctl.state = StateIdle
	ctl.editIndex = -1
	return nil
}

// nextID assigns the creation timestamp in unix milliseconds, bumped when two
// creations land in the same millisecond so ids stay unique.
func (ctl *Controller) nextID() int64 {
	id := ctl.now().UnixMilli()
	if id <= ctl.lastID {
		id = ctl.lastID + 1
	}
	ctl.lastID = id
	return id
}

// Delete removes the project at index after confirmation and pushes the list.
func (ctl *Controller) Delete(ctx context.Context, index int, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if index < 0 || index >= len(ctl.projects) {
		return fmt.Errorf("no project at index %d", index)
	}

	ctl.projects = append(ctl.projects[:index], ctl.projects[index+1:]...)

	// Keep an open edit pointing at the same project: deleting it abandons the
	// form, deleting an earlier entry shifts the binding down by one.
	if ctl.state == StateEditing {
		switch {
		case index == ctl.editIndex:
			ctl.Cancel()
		case index < ctl.editIndex:
			ctl.editIndex--
		}
	}

	return ctl.client.SavePortfolio(ctx, ctl.projects)
}
