package updateversions

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileEndings is the file name filter used when none is configured.
// Suffix matching means "AssemblyInfo.cs" also catches "CommonAssemblyInfo.cs".
var DefaultFileEndings = []string{"AssemblyInfo.cs"}

// Walk recursively visits every file under root whose base name ends with
// one of the given suffixes, compared case-insensitively. The visit
// callback is invoked once per matching file, in traversal order, with a
// nil err. When a path cannot be listed or statted mid-walk (e.g. an
// unreadable subdirectory), visit is invoked once with the failing path
// and the non-nil err, that subtree is skipped, and traversal continues
// with the remaining entries. visit may return an error to stop the walk.
//
// A root that is itself a symlink to a directory is resolved before
// walking; visited paths are then reported under the resolved root.
// Directory symlinks below the root are not followed (filepath.WalkDir
// semantics), so a symlink cycle on disk cannot cause unbounded recursion.
//
// Returns ErrPathNotFound if root does not exist and ErrNotADirectory if
// root is a regular file. Traversal itself is read-only.
func Walk(root string, endings []string, visit func(path string, err error) error) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	// os.Stat follows symlinks but filepath.WalkDir does not, so a symlink
	// root would otherwise be walked as a single non-directory entry.
	if li, lerr := os.Lstat(root); lerr == nil && li.Mode()&fs.ModeSymlink != 0 {
		resolved, rerr := filepath.EvalSymlinks(root)
		if rerr != nil {
			return fmt.Errorf("resolve %s: %w", root, rerr)
		}
		root = resolved
	}

	if len(endings) == 0 {
		endings = DefaultFileEndings
	}
	lowered := make([]string, len(endings))
	for i, e := range endings {
		lowered[i] = strings.ToLower(e)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable subtree is reported and skipped, never fatal.
			return visit(path, err)
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		for _, suffix := range lowered {
			if strings.HasSuffix(name, suffix) {
				return visit(path, nil)
			}
		}
		return nil
	})
}
