package gallery

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func srcList(images []Image) []string {
	srcs := make([]string, 0, len(images))
	for _, img := range images {
		srcs = append(srcs, img.Src)
	}
	return srcs
}

func TestImagesNaturalOrder(t *testing.T) {
	dir := writeFiles(t, "ride-10.jpg", "ride-2.jpg", "ride-1.jpg", "garage.png")

	got := srcList(NewLister(dir).Images())
	want := []string{
		"/gallary/garage.png",
		"/gallary/ride-1.jpg",
		"/gallary/ride-2.jpg",
		"/gallary/ride-10.jpg",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Images() order = %v, want %v", got, want)
	}
}

func TestImagesFiltersNonImages(t *testing.T) {
	dir := writeFiles(t, "ride-1.jpg", "notes.txt", "thumbs.db", "cover.WEBP")

	got := srcList(NewLister(dir).Images())
	want := []string{"/gallary/cover.WEBP", "/gallary/ride-1.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Images() = %v, want %v", got, want)
	}
}

func TestImagesSkipsSubdirectories(t *testing.T) {
	dir := writeFiles(t, "ride-1.jpg")
	if err := os.Mkdir(filepath.Join(dir, "raw.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}

	got := NewLister(dir).Images()
	if len(got) != 1 || got[0].Src != "/gallary/ride-1.jpg" {
		t.Errorf("Images() = %v, want only ride-1.jpg", got)
	}
}

func TestImagesFallback(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		got := NewLister(filepath.Join(t.TempDir(), "nope")).Images()
		if !reflect.DeepEqual(got, defaultCatalog) {
			t.Errorf("Images() = %v, want default catalog", got)
		}
	})

	t.Run("no images in directory", func(t *testing.T) {
		dir := writeFiles(t, "readme.md")
		got := NewLister(dir).Images()
		if !reflect.DeepEqual(got, defaultCatalog) {
			t.Errorf("Images() = %v, want default catalog", got)
		}
	})
}

func TestAltFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"sunset-ride.jpg", "sunset ride"},
		{"garage_night_01.png", "garage night 01"},
		{"cover.webp", "cover"},
		{"---.jpg", "Gallery image"},
	}

	for _, tt := range tests {
		if got := altFromFilename(tt.name); got != tt.want {
			t.Errorf("altFromFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"ride-2.jpg", "ride-10.jpg", true},
		{"ride-10.jpg", "ride-2.jpg", false},
		{"ride-02.jpg", "ride-2.jpg", true},
		{"a.jpg", "b.jpg", true},
		{"ride-1.jpg", "ride.jpg", true},
		{"img1a.jpg", "img1b.jpg", true},
	}

	for _, tt := range tests {
		if got := naturalLess(tt.a, tt.b); got != tt.want {
			t.Errorf("naturalLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
