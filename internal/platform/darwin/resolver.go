//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework ApplicationServices -framework CoreFoundation -framework Foundation
#import <AppKit/AppKit.h>
#include <ApplicationServices/ApplicationServices.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

// axi_pid_for_name finds a running application by case-insensitive
// localized name. On success it stores a strdup'd copy of the name.
static int axi_pid_for_name(const char *name, char **resolved) {
    @autoreleasepool {
        NSString *want = [NSString stringWithUTF8String:name];
        for (NSRunningApplication *app in [[NSWorkspace sharedWorkspace] runningApplications]) {
            NSString *got = [app localizedName];
            if (got != nil && [got caseInsensitiveCompare:want] == NSOrderedSame) {
                *resolved = strdup([got UTF8String]);
                return (int)[app processIdentifier];
            }
        }
        return -1;
    }
}

static int axi_frontmost(char **resolved) {
    @autoreleasepool {
        NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
        if (app == nil) return -1;
        NSString *name = [app localizedName];
        *resolved = strdup(name != nil ? [name UTF8String] : "");
        return (int)[app processIdentifier];
    }
}

// axi_list_apps returns "pid\tfrontmost\tname\n" lines for regular
// applications in a malloc'd buffer.
static char *axi_list_apps(void) {
    @autoreleasepool {
        NSRunningApplication *front = [[NSWorkspace sharedWorkspace] frontmostApplication];
        NSMutableString *out = [NSMutableString string];
        for (NSRunningApplication *app in [[NSWorkspace sharedWorkspace] runningApplications]) {
            if ([app activationPolicy] != NSApplicationActivationPolicyRegular) continue;
            NSString *name = [app localizedName];
            if (name == nil) continue;
            int isFront = front != nil && [app processIdentifier] == [front processIdentifier];
            [out appendFormat:@"%d\t%d\t%@\n", (int)[app processIdentifier], isFront, name];
        }
        return strdup([out UTF8String]);
    }
}

static uintptr_t axi_app_element(int pid) {
    return (uintptr_t)AXUIElementCreateApplication((pid_t)pid);
}
*/
import "C"
import (
	"unsafe"

	"github.com/mj1618/ax-inspector/internal/ax"
)

// Resolver finds running applications through NSWorkspace and returns their
// accessibility root elements.
type Resolver struct{}

// NewResolver creates a new macOS application resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveByName returns the first running application whose localized name
// matches name, ignoring case.
func (r *Resolver) ResolveByName(name string) (*ax.Application, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var resolved *C.char
	pid := int(C.axi_pid_for_name(cName, &resolved))
	if pid < 0 {
		return nil, &ax.NotFoundError{Name: name}
	}
	return application(goString(resolved), pid), nil
}

// ResolveFrontmost returns the application that currently owns the menu bar.
func (r *Resolver) ResolveFrontmost() (*ax.Application, error) {
	var resolved *C.char
	pid := int(C.axi_frontmost(&resolved))
	if pid < 0 {
		return nil, ax.ErrNoActiveApplication
	}
	return application(goString(resolved), pid), nil
}

// ListApplications returns the regular (Dock-visible) running applications.
func (r *Resolver) ListApplications() ([]ax.AppInfo, error) {
	return parseAppList(goString(C.axi_list_apps())), nil
}

func application(name string, pid int) *ax.Application {
	root := newElement(C.axi_app_element(C.int(pid)), false)
	return &ax.Application{Name: name, PID: pid, Root: root}
}
