package preflight

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"alcfg/internal/resource"
)

// CheckDirectoryAccess verifies that path is a readable, writable directory.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckInputs verifies that every file in required resolves through locator.
// The detail lists the missing files, or the resolved paths when all are found.
func CheckInputs(name string, locator *resource.Locator, required []string) Result {
	var missing, found []string
	for _, file := range required {
		path, err := locator.Find(file)
		if err != nil {
			missing = append(missing, file)
			continue
		}
		found = append(found, path)
	}
	if len(missing) > 0 {
		return Result{Name: name, Detail: "missing " + strings.Join(missing, ", ")}
	}
	if len(found) == 0 {
		return Result{Name: name, Passed: true, Detail: "no required inputs"}
	}
	return Result{Name: name, Passed: true, Detail: strings.Join(found, ", ")}
}
