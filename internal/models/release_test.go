package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReleaseList_Add(t *testing.T) {
	var l ReleaseList
	l.Add("Movie.720p.BluRay", "code-a")
	l.Add("Movie.1080p.WEB-DL", "code-b")
	l.Add("Movie.720p.BluRay", "code-c")

	want := ReleaseList{
		{Name: "Movie.720p.BluRay", DownloadCode: "code-c"},
		{Name: "Movie.1080p.WEB-DL", DownloadCode: "code-b"},
	}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Errorf("ReleaseList mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Movie.720p.BluRay", "Movie.1080p.WEB-DL"}, l.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestReleaseList_DownloadCode(t *testing.T) {
	l := ReleaseList{{Name: "a", DownloadCode: "1"}}
	if code, ok := l.DownloadCode("a"); !ok || code != "1" {
		t.Errorf("DownloadCode(a) = %q, %v", code, ok)
	}
	if _, ok := l.DownloadCode("b"); ok {
		t.Error("DownloadCode(b) found a missing release")
	}
}
