package collector

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/marek-kar/apic-faults/pkg/model"
)

const testURL = "https://faults.example.com/FaultMessages.html"

func TestFetcher_Fetch(t *testing.T) {
	Convey("Fetch", t, func() {
		client := &http.Client{}
		httpmock.ActivateNonDefault(client)
		defer httpmock.DeactivateAndReset()

		f := NewFetcher(client)

		Convey("returns the body on 200", func() {
			httpmock.RegisterResponder(http.MethodGet, testURL,
				httpmock.NewStringResponder(http.StatusOK, "<html></html>"))

			body, err := f.Fetch(context.Background(), testURL)
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, "<html></html>")
			So(httpmock.GetTotalCallCount(), ShouldEqual, 1)
		})

		Convey("fails on any other status without retrying", func() {
			httpmock.RegisterResponder(http.MethodGet, testURL,
				httpmock.NewStringResponder(http.StatusServiceUnavailable, "down"))

			body, err := f.Fetch(context.Background(), testURL)
			So(body, ShouldBeNil)
			So(errors.Is(err, ErrFetch), ShouldBeTrue)

			var fe *FetchError
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.StatusCode, ShouldEqual, http.StatusServiceUnavailable)
			So(fe.URL, ShouldEqual, testURL)
			So(err.Error(), ShouldContainSubstring, "status code: 503")
			So(httpmock.GetTotalCallCount(), ShouldEqual, 1)
		})

		Convey("treats other success codes as failures", func() {
			httpmock.RegisterResponder(http.MethodGet, testURL,
				httpmock.NewStringResponder(http.StatusNoContent, ""))

			_, err := f.Fetch(context.Background(), testURL)
			So(errors.Is(err, ErrFetch), ShouldBeTrue)
		})

		Convey("wraps transport errors", func() {
			httpmock.RegisterResponder(http.MethodGet, testURL,
				httpmock.NewErrorResponder(errors.New("connection refused")))

			_, err := f.Fetch(context.Background(), testURL)
			So(errors.Is(err, ErrFetch), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "connection refused")
		})
	})
}

func TestCollect(t *testing.T) {
	Convey("Collect", t, func() {
		client := &http.Client{}
		httpmock.ActivateNonDefault(client)
		defer httpmock.DeactivateAndReset()

		page, err := os.ReadFile(filepath.Join("testdata", "FaultMessages.html"))
		So(err, ShouldBeNil)

		opts := DefaultOptions()
		opts.URL = testURL

		Convey("parses the fetched page into a snapshot", func() {
			httpmock.RegisterResponder(http.MethodGet, testURL,
				httpmock.NewBytesResponder(http.StatusOK, page))

			snap, err := Collect(context.Background(), NewFetcher(client), opts)
			So(err, ShouldBeNil)
			So(snap.SchemaVersion, ShouldEqual, model.SchemaVersion)
			So(snap.Source, ShouldEqual, testURL)
			So(len(snap.Faults), ShouldEqual, 3)
			So(snap.Faults[0].Code, ShouldEqual, "F0020")
		})

		Convey("produces nothing when the page is unavailable", func() {
			httpmock.RegisterResponder(http.MethodGet, testURL,
				httpmock.NewStringResponder(http.StatusNotFound, ""))

			snap, err := Collect(context.Background(), NewFetcher(client), opts)
			So(snap, ShouldBeNil)
			So(errors.Is(err, ErrFetch), ShouldBeTrue)
		})
	})
}

func TestSaveLoad(t *testing.T) {
	Convey("Save and Load", t, func() {
		path := filepath.Join(t.TempDir(), "faults.json")
		snap := model.NewSnapshot(testURL, []model.FaultRecord{
			{Code: "F0020", Name: "fltA", Severity: "minor", Explanation: "x"},
		})

		So(Save(path, snap), ShouldBeNil)

		loaded, err := Load(path)
		So(err, ShouldBeNil)
		So(loaded.Source, ShouldEqual, testURL)
		So(loaded.Faults, ShouldResemble, snap.Faults)

		Convey("rejects other schema versions", func() {
			So(os.WriteFile(path, []byte(`{"schemaVersion":"v0","faults":[]}`), 0o644), ShouldBeNil)
			_, err := Load(path)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "schema")
		})

		Convey("rejects a repeated fault code", func() {
			So(Save(path, model.NewSnapshot(testURL, []model.FaultRecord{
				{Code: "F0020", Name: "fltA", Severity: "minor", Explanation: "x"},
				{Code: "F0020", Name: "fltB", Severity: "major", Explanation: "y"},
			})), ShouldBeNil)

			loaded, err := Load(path)
			So(loaded, ShouldBeNil)
			So(errors.Is(err, ErrDuplicateCode), ShouldBeTrue)
		})

		Convey("fails on a missing file", func() {
			_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.URL != DefaultURL {
		t.Errorf("URL: got %q, want %q", opts.URL, DefaultURL)
	}
	if opts.Timeout.Seconds() != 30 {
		t.Errorf("Timeout: got %s, want 30s", opts.Timeout)
	}
}
