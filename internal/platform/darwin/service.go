//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdint.h>
#include <stdlib.h>

enum {
    AXI_OTHER = 0,
    AXI_STRING,
    AXI_NUMBER,
    AXI_BOOL,
    AXI_POINT,
    AXI_SIZE,
    AXI_ELEMENT,
    AXI_ARRAY
};

static void axi_retain(uintptr_t ref) {
    if (ref) CFRetain((CFTypeRef)ref);
}

static void axi_release(uintptr_t ref) {
    if (ref) CFRelease((CFTypeRef)ref);
}

static int axi_copy_names(uintptr_t el, uintptr_t *out) {
    CFArrayRef names = NULL;
    AXError err = AXUIElementCopyAttributeNames((AXUIElementRef)el, &names);
    *out = (uintptr_t)names;
    return (int)err;
}

static int axi_copy_value(uintptr_t el, const char *name, uintptr_t *out) {
    CFStringRef attr = CFStringCreateWithCString(kCFAllocatorDefault, name, kCFStringEncodingUTF8);
    CFTypeRef value = NULL;
    AXError err = AXUIElementCopyAttributeValue((AXUIElementRef)el, attr, &value);
    CFRelease(attr);
    *out = (uintptr_t)value;
    return (int)err;
}

static int axi_kind(uintptr_t ref) {
    CFTypeRef v = (CFTypeRef)ref;
    CFTypeID t = CFGetTypeID(v);
    if (t == CFStringGetTypeID()) return AXI_STRING;
    if (t == CFBooleanGetTypeID()) return AXI_BOOL;
    if (t == CFNumberGetTypeID()) return AXI_NUMBER;
    if (t == AXUIElementGetTypeID()) return AXI_ELEMENT;
    if (t == CFArrayGetTypeID()) return AXI_ARRAY;
    if (t == AXValueGetTypeID()) {
        switch (AXValueGetType((AXValueRef)v)) {
        case kAXValueCGPointType: return AXI_POINT;
        case kAXValueCGSizeType: return AXI_SIZE;
        default: return AXI_OTHER;
        }
    }
    return AXI_OTHER;
}

// axi_string copies a CFString into a malloc'd UTF-8 buffer.
static char *axi_string(uintptr_t ref) {
    CFStringRef s = (CFStringRef)ref;
    CFIndex len = CFStringGetLength(s);
    CFIndex size = CFStringGetMaximumSizeForEncoding(len, kCFStringEncodingUTF8) + 1;
    char *buf = malloc(size);
    if (!CFStringGetCString(s, buf, size, kCFStringEncodingUTF8)) buf[0] = 0;
    return buf;
}

static char *axi_describe(uintptr_t ref) {
    CFStringRef d = CFCopyDescription((CFTypeRef)ref);
    char *out = axi_string((uintptr_t)d);
    CFRelease(d);
    return out;
}

static double axi_number(uintptr_t ref) {
    double d = 0;
    CFNumberGetValue((CFNumberRef)ref, kCFNumberDoubleType, &d);
    return d;
}

static int axi_bool(uintptr_t ref) {
    return CFBooleanGetValue((CFBooleanRef)ref) ? 1 : 0;
}

static void axi_point(uintptr_t ref, double *x, double *y) {
    CGPoint p = CGPointZero;
    AXValueGetValue((AXValueRef)ref, kAXValueCGPointType, &p);
    *x = p.x;
    *y = p.y;
}

static void axi_size(uintptr_t ref, double *w, double *h) {
    CGSize s = CGSizeZero;
    AXValueGetValue((AXValueRef)ref, kAXValueCGSizeType, &s);
    *w = s.width;
    *h = s.height;
}

static long axi_array_count(uintptr_t ref) {
    return (long)CFArrayGetCount((CFArrayRef)ref);
}

static uintptr_t axi_array_at(uintptr_t ref, long i) {
    return (uintptr_t)CFArrayGetValueAtIndex((CFArrayRef)ref, (CFIndex)i);
}
*/
import "C"
import (
	"fmt"
	"runtime"
	"strconv"
	"unsafe"

	"github.com/mj1618/ax-inspector/internal/ax"
)

// element is an AXUIElementRef. It holds one CoreFoundation reference that
// is released when the element is garbage collected.
type element struct {
	ref C.uintptr_t
}

// newElement wraps ref. Pass retain=true when ref is borrowed (Get rule) and
// false when the caller already owns it (Create/Copy rule).
func newElement(ref C.uintptr_t, retain bool) *element {
	if retain {
		C.axi_retain(ref)
	}
	el := &element{ref: ref}
	runtime.SetFinalizer(el, func(e *element) { C.axi_release(e.ref) })
	return el
}

func asElement(n ax.Node) (*element, error) {
	el, ok := n.(*element)
	if !ok || el == nil || el.ref == 0 {
		return nil, fmt.Errorf("%w: %T", ax.ErrInvalidNodeHandle, n)
	}
	return el, nil
}

func goString(c *C.char) string {
	defer C.free(unsafe.Pointer(c))
	return C.GoString(c)
}

// Service implements ax.Service with AXUIElementCopyAttribute* calls.
type Service struct{}

// NewService creates a new macOS accessibility service.
func NewService() *Service {
	return &Service{}
}

// AttributeNames returns every attribute name the element supports.
func (s *Service) AttributeNames(n ax.Node) ([]string, error) {
	el, err := asElement(n)
	if err != nil {
		return nil, err
	}

	var arr C.uintptr_t
	code := int(C.axi_copy_names(el.ref, &arr))
	runtime.KeepAlive(el)
	if code != 0 {
		return nil, queryError("", code)
	}
	if arr == 0 {
		return []string{}, nil
	}
	defer C.axi_release(arr)

	count := int(C.axi_array_count(arr))
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		names = append(names, goString(C.axi_string(C.axi_array_at(arr, C.long(i)))))
	}
	return names, nil
}

// AttributeValue reads one attribute and converts it to an ax.Value.
func (s *Service) AttributeValue(n ax.Node, name string) (ax.Value, error) {
	el, err := asElement(n)
	if err != nil {
		return nil, err
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var ref C.uintptr_t
	code := int(C.axi_copy_value(el.ref, cName, &ref))
	runtime.KeepAlive(el)
	if code != 0 {
		return nil, queryError(name, code)
	}
	if ref == 0 {
		return nil, queryError(name, axErrorNoValue)
	}
	defer C.axi_release(ref)

	return convertValue(ref), nil
}

// convertValue maps a borrowed CFTypeRef onto the ax.Value variants.
func convertValue(ref C.uintptr_t) ax.Value {
	switch C.axi_kind(ref) {
	case C.AXI_STRING:
		return ax.Text(goString(C.axi_string(ref)))
	case C.AXI_NUMBER:
		return ax.Number(float64(C.axi_number(ref)))
	case C.AXI_BOOL:
		return ax.Opaque{Description: strconv.FormatBool(C.axi_bool(ref) != 0)}
	case C.AXI_POINT:
		var x, y C.double
		C.axi_point(ref, &x, &y)
		return ax.Point{X: float64(x), Y: float64(y)}
	case C.AXI_SIZE:
		var w, h C.double
		C.axi_size(ref, &w, &h)
		return ax.Size{Width: float64(w), Height: float64(h)}
	case C.AXI_ELEMENT:
		return ax.NodeRef{Node: newElement(ref, true)}
	case C.AXI_ARRAY:
		return convertArray(ref)
	default:
		return ax.Opaque{Description: goString(C.axi_describe(ref))}
	}
}

// convertArray returns a NodeList when every item is an element and an
// Opaque description otherwise.
func convertArray(ref C.uintptr_t) ax.Value {
	count := int(C.axi_array_count(ref))
	nodes := make(ax.NodeList, 0, count)
	for i := 0; i < count; i++ {
		item := C.axi_array_at(ref, C.long(i))
		if C.axi_kind(item) != C.AXI_ELEMENT {
			return ax.Opaque{Description: goString(C.axi_describe(ref))}
		}
		nodes = append(nodes, newElement(item, true))
	}
	return nodes
}
