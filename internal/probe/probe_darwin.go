//go:build darwin

package probe

/*
#cgo LDFLAGS: -framework CoreText -framework CoreFoundation
#include <CoreFoundation/CoreFoundation.h>
#include <CoreText/CoreText.h>
*/
import "C"

import "unsafe"

type darwinProber struct{}

// New returns a prober backed by the Core Text font collection.
func New() Prober {
	return &darwinProber{}
}

func (p *darwinProber) Fonts() ([]Record, bool) {
	collection := C.CTFontCollectionCreateFromAvailableFonts(nil)
	if collection == nil {
		return nil, false
	}
	defer C.CFRelease(C.CFTypeRef(unsafe.Pointer(collection)))

	descriptors := C.CTFontCollectionCreateMatchingFontDescriptors(collection)
	if descriptors == nil {
		return nil, false
	}
	defer C.CFRelease(C.CFTypeRef(unsafe.Pointer(descriptors)))

	count := C.CFArrayGetCount(descriptors)
	records := make([]Record, 0, int(count))
	for i := C.CFIndex(0); i < count; i++ {
		descriptor := C.CTFontDescriptorRef(C.CFArrayGetValueAtIndex(descriptors, i))
		if record, ok := descriptorRecord(descriptor); ok {
			records = append(records, record)
		}
	}
	return records, true
}

// descriptorRecord reads the family name and file URL of one font
// descriptor. Descriptors without a resolvable file URL are skipped
// entirely rather than reported with an empty path.
func descriptorRecord(descriptor C.CTFontDescriptorRef) (Record, bool) {
	font := C.CTFontCreateWithFontDescriptor(descriptor, C.CGFloat(0), nil)
	if font == nil {
		return Record{}, false
	}
	nameRef := C.CTFontCopyFamilyName(font)
	family := goString(nameRef)
	if nameRef != nil {
		C.CFRelease(C.CFTypeRef(unsafe.Pointer(nameRef)))
	}
	C.CFRelease(C.CFTypeRef(unsafe.Pointer(font)))
	if family == "" {
		return Record{}, false
	}

	urlAttr := C.CTFontDescriptorCopyAttribute(descriptor, C.kCTFontURLAttribute)
	if urlAttr == nil {
		return Record{}, false
	}
	defer C.CFRelease(urlAttr)

	var buf [4096]byte
	ok := C.CFURLGetFileSystemRepresentation(
		C.CFURLRef(unsafe.Pointer(urlAttr)),
		C.Boolean(1),
		(*C.UInt8)(unsafe.Pointer(&buf[0])),
		C.CFIndex(len(buf)),
	)
	if ok == 0 {
		return Record{}, false
	}
	path := C.GoString((*C.char)(unsafe.Pointer(&buf[0])))
	if path == "" {
		return Record{}, false
	}

	return Record{Family: family, Path: path}, true
}

func goString(ref C.CFStringRef) string {
	if ref == nil {
		return ""
	}
	var buf [1024]byte
	ok := C.CFStringGetCString(
		ref,
		(*C.char)(unsafe.Pointer(&buf[0])),
		C.CFIndex(len(buf)),
		C.kCFStringEncodingUTF8,
	)
	if ok == 0 {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(&buf[0])))
}
