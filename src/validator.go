package src

import (
	"path/filepath"
	"strings"
)

const INDEX_FILE = "index.html"

// Validate picks the response for a parsed request. Checks run in a fixed
// order: method, confinement and existence, directory handling, file read.
// Every outcome is one of 200, 301, 404 or 405.
func Validate(req *Request, cfg Config, fsys FileSystem) Response {
	if req.Method() != GET {
		return MethodNotAllowed()
	}

	normalized := req.NormalizedPath()
	if normalized == "" || escapesRoot(cfg.Root, normalized) {
		return NotFound()
	}

	info, err := fsys.Stat(normalized)
	if err != nil {
		return NotFound()
	}

	file_to_serve := normalized
	if info.IsDir() {
		target, query, has_query := strings.Cut(req.Path(), "?")
		if !strings.HasSuffix(target, "/") {
			location := cfg.BaseURL + target + "/"
			if has_query {
				location += "?" + query
			}
			return MovedPermanently(location)
		}
		file_to_serve = filepath.Join(normalized, INDEX_FILE)
	}

	response, err := ServeFile(fsys, file_to_serve)
	if err != nil {
		return NotFound()
	}
	return response
}

// escapesRoot reports whether target, taken relative to root, climbs out of
// it through a ".." segment.
func escapesRoot(root, target string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), target)
	if err != nil {
		return true
	}
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if segment == ".." {
			return true
		}
	}
	return false
}

// Respond runs one raw request through Parse and Validate.
func Respond(raw string, cfg Config, fsys FileSystem) (Response, error) {
	req, err := Parse(raw, cfg)
	if err != nil {
		return Response{}, err
	}
	return Validate(req, cfg, fsys), nil
}
