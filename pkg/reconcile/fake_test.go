package reconcile

import (
	"context"
	"fmt"

	"github.com/uptimekit/versionsync/internal/kuma"
)

// fakeAPI is an in-memory stand-in for the Uptime Kuma API. It records
// every mutating call in order so tests can assert call counts and the
// remove-before-add invariant.
type fakeAPI struct {
	monitors    []kuma.Monitor
	globalTags  []kuma.Tag
	monitorTags map[int64][]kuma.Tag
	nextTagID   int64

	loginErr       error
	monitorsErr    error
	monitorTagsErr error
	addErr         error
	removeErr      error
	createTagErr   error

	loginCalls int
	mutations  []string // e.g. "remove:version-1.0.0", "add:version-1.0.1", "create:version-1.0.1"
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		monitorTags: make(map[int64][]kuma.Tag),
		nextTagID:   100,
	}
}

func (f *fakeAPI) addMonitor(id int64, name string, tags ...string) {
	f.monitors = append(f.monitors, kuma.Monitor{ID: id, Name: name})
	for _, name := range tags {
		tag := f.ensureGlobalTag(name)
		f.monitorTags[id] = append(f.monitorTags[id], tag)
	}
}

func (f *fakeAPI) ensureGlobalTag(name string) kuma.Tag {
	for _, tag := range f.globalTags {
		if tag.Name == name {
			return tag
		}
	}
	f.nextTagID++
	tag := kuma.Tag{ID: f.nextTagID, Name: name, Color: "#3b82f6"}
	f.globalTags = append(f.globalTags, tag)
	return tag
}

func (f *fakeAPI) tagNames(monitorID int64) []string {
	names := make([]string, 0, len(f.monitorTags[monitorID]))
	for _, tag := range f.monitorTags[monitorID] {
		names = append(names, tag.Name)
	}
	return names
}

func (f *fakeAPI) Login(_ context.Context) error {
	f.loginCalls++
	return f.loginErr
}

func (f *fakeAPI) Monitors(_ context.Context) ([]kuma.Monitor, error) {
	if f.monitorsErr != nil {
		return nil, f.monitorsErr
	}
	return f.monitors, nil
}

func (f *fakeAPI) Tags(_ context.Context) ([]kuma.Tag, error) {
	return f.globalTags, nil
}

func (f *fakeAPI) MonitorTags(_ context.Context, monitorID int64) ([]kuma.Tag, error) {
	if f.monitorTagsErr != nil {
		return nil, f.monitorTagsErr
	}
	return f.monitorTags[monitorID], nil
}

func (f *fakeAPI) CreateTag(_ context.Context, name, color string) (kuma.Tag, error) {
	if f.createTagErr != nil {
		return kuma.Tag{}, f.createTagErr
	}
	f.mutations = append(f.mutations, "create:"+name)
	f.nextTagID++
	tag := kuma.Tag{ID: f.nextTagID, Name: name, Color: color}
	f.globalTags = append(f.globalTags, tag)
	return tag, nil
}

func (f *fakeAPI) AddMonitorTag(_ context.Context, monitorID, tagID int64) error {
	if f.addErr != nil {
		return f.addErr
	}
	for _, tag := range f.globalTags {
		if tag.ID == tagID {
			f.mutations = append(f.mutations, "add:"+tag.Name)
			f.monitorTags[monitorID] = append(f.monitorTags[monitorID], tag)
			return nil
		}
	}
	return fmt.Errorf("no such tag %d", tagID)
}

func (f *fakeAPI) RemoveMonitorTag(_ context.Context, monitorID, tagID int64) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	tags := f.monitorTags[monitorID]
	for i, tag := range tags {
		if tag.ID == tagID {
			f.mutations = append(f.mutations, "remove:"+tag.Name)
			f.monitorTags[monitorID] = append(tags[:i:i], tags[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("tag %d not on monitor %d", tagID, monitorID)
}

// fakeFetcher maps endpoints to canned versions or errors.
type fakeFetcher struct {
	versions map[string]string
	errs     map[string]error
}

func (f *fakeFetcher) Fetch(_ context.Context, endpoint string) (string, error) {
	if err, ok := f.errs[endpoint]; ok {
		return "", err
	}
	if v, ok := f.versions[endpoint]; ok {
		return v, nil
	}
	return "", fmt.Errorf("unexpected endpoint %s", endpoint)
}
