package models

// Release is one release row of a listing page: the release name and the
// opaque code the site needs to download it.
type Release struct {
	Name         string `json:"name"`
	DownloadCode string `json:"downloadCode"`
}

// ReleaseList keeps releases in page order with unique names.
type ReleaseList []Release

// Add appends a release, or updates the code of an existing one in place.
func (l *ReleaseList) Add(name, code string) {
	for i := range *l {
		if (*l)[i].Name == name {
			(*l)[i].DownloadCode = code
			return
		}
	}
	*l = append(*l, Release{Name: name, DownloadCode: code})
}

// DownloadCode returns the code of the named release.
func (l ReleaseList) DownloadCode(name string) (string, bool) {
	for _, r := range l {
		if r.Name == name {
			return r.DownloadCode, true
		}
	}
	return "", false
}

// Names returns the release names in page order.
func (l ReleaseList) Names() []string {
	names := make([]string, len(l))
	for i, r := range l {
		names[i] = r.Name
	}
	return names
}
