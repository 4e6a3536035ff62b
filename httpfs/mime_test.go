package httpfs

import "testing"

func TestContentTypeFor(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"/srv/www/index.html", "text/html"},
		{"/srv/www/page.HTM", "text/html"},
		{"/srv/www/style.css", "text/css"},
		{"/srv/www/app.js", "application/javascript"},
		{"/srv/www/data.json", "application/json"},
		{"/srv/www/logo.PNG", "image/png"},
		{"/srv/www/photo.jpeg", "image/jpeg"},
		{"/srv/www/anim.gif", "image/gif"},
		{"/srv/www/notes.txt", "text/plain"},
		{"/srv/www/data.unknownext", "application/octet-stream"},
		{"/srv/www/Makefile", "application/octet-stream"},
		{"/srv/www.d/README", "application/octet-stream"},
		{"/srv/www/archive.tar.gz", "application/octet-stream"},
	}
	for _, c := range cases {
		if got := ContentTypeFor(c.path); got != c.want {
			t.Fatalf("ContentTypeFor(%q)=%q, want %q", c.path, got, c.want)
		}
	}
}
