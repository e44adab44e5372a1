//go:build windows

package probe

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

type windowsProber struct {
	createFactory *windows.LazyProc
}

// New returns a prober backed by the DirectWrite system font collection.
func New() Prober {
	return &windowsProber{createFactory: procDWriteCreateFactory}
}

var (
	dwrite                  = windows.NewLazySystemDLL("dwrite.dll")
	procDWriteCreateFactory = dwrite.NewProc("DWriteCreateFactory")
)

const dwriteFactoryTypeShared = 0

// IID_IDWriteFactory
var iidIDWriteFactory = windows.GUID{
	Data1: 0xb859ee5a,
	Data2: 0xd838,
	Data3: 0x4b5b,
	Data4: [8]byte{0xa2, 0xe8, 0x1a, 0xdc, 0x7d, 0x93, 0xdb, 0x48},
}

type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type dwriteFactory struct {
	vtbl *dwriteFactoryVtbl
}

type dwriteFactoryVtbl struct {
	iUnknownVtbl
	GetSystemFontCollection uintptr
	// remaining factory methods are unused
}

type fontCollection struct {
	vtbl *fontCollectionVtbl
}

type fontCollectionVtbl struct {
	iUnknownVtbl
	GetFontFamilyCount  uintptr
	GetFontFamily       uintptr
	FindFamilyName      uintptr
	GetFontFromFontFace uintptr
}

type fontFamily struct {
	vtbl *fontFamilyVtbl
}

type fontFamilyVtbl struct {
	iUnknownVtbl
	// IDWriteFontList
	GetFontCollection uintptr
	GetFontCount      uintptr
	GetFont           uintptr
	// IDWriteFontFamily
	GetFamilyNames       uintptr
	GetFirstMatchingFont uintptr
	GetMatchingFonts     uintptr
}

type localizedStrings struct {
	vtbl *localizedStringsVtbl
}

type localizedStringsVtbl struct {
	iUnknownVtbl
	GetCount            uintptr
	FindLocaleName      uintptr
	GetLocaleNameLength uintptr
	GetLocaleName       uintptr
	GetStringLength     uintptr
	GetString           uintptr
}

func (f *dwriteFactory) Release() {
	syscall.SyscallN(f.vtbl.Release, uintptr(unsafe.Pointer(f)))
}

func (c *fontCollection) Release() {
	syscall.SyscallN(c.vtbl.Release, uintptr(unsafe.Pointer(c)))
}

func (f *fontFamily) Release() {
	syscall.SyscallN(f.vtbl.Release, uintptr(unsafe.Pointer(f)))
}

func (s *localizedStrings) Release() {
	syscall.SyscallN(s.vtbl.Release, uintptr(unsafe.Pointer(s)))
}

func succeeded(hr uintptr) bool {
	return int32(hr) >= 0
}

func (p *windowsProber) Fonts() ([]Record, bool) {
	// Find never panics; Call does when the DLL or export is absent.
	if err := p.createFactory.Find(); err != nil {
		return nil, false
	}

	var factory *dwriteFactory
	hr, _, _ := p.createFactory.Call(
		dwriteFactoryTypeShared,
		uintptr(unsafe.Pointer(&iidIDWriteFactory)),
		uintptr(unsafe.Pointer(&factory)),
	)
	if !succeeded(hr) || factory == nil {
		return nil, false
	}
	defer factory.Release()

	var collection *fontCollection
	hr, _, _ = syscall.SyscallN(factory.vtbl.GetSystemFontCollection,
		uintptr(unsafe.Pointer(factory)),
		uintptr(unsafe.Pointer(&collection)),
		0, // checkForUpdates = FALSE
	)
	if !succeeded(hr) || collection == nil {
		return nil, false
	}
	defer collection.Release()

	count, _, _ := syscall.SyscallN(collection.vtbl.GetFontFamilyCount,
		uintptr(unsafe.Pointer(collection)))

	records := make([]Record, 0, uint32(count))
	for i := uint32(0); i < uint32(count); i++ {
		name, ok := familyName(collection, i)
		if !ok || name == "" {
			continue
		}
		// No registry or file lookup is performed for the path; the
		// reported location is a synthesized guess and may not exist.
		records = append(records, Record{Family: name, Path: placeholderPath(name)})
	}
	return records, true
}

// familyName reads entry 0 of the localized-name table of the i-th
// family in the collection. Any failure skips just that family.
func familyName(collection *fontCollection, i uint32) (string, bool) {
	var family *fontFamily
	hr, _, _ := syscall.SyscallN(collection.vtbl.GetFontFamily,
		uintptr(unsafe.Pointer(collection)),
		uintptr(i),
		uintptr(unsafe.Pointer(&family)),
	)
	if !succeeded(hr) || family == nil {
		return "", false
	}
	defer family.Release()

	var names *localizedStrings
	hr, _, _ = syscall.SyscallN(family.vtbl.GetFamilyNames,
		uintptr(unsafe.Pointer(family)),
		uintptr(unsafe.Pointer(&names)),
	)
	if !succeeded(hr) || names == nil {
		return "", false
	}
	defer names.Release()

	var length uint32
	hr, _, _ = syscall.SyscallN(names.vtbl.GetStringLength,
		uintptr(unsafe.Pointer(names)),
		0,
		uintptr(unsafe.Pointer(&length)),
	)
	if !succeeded(hr) {
		return "", false
	}

	buf := make([]uint16, length+1) // room for the terminator
	hr, _, _ = syscall.SyscallN(names.vtbl.GetString,
		uintptr(unsafe.Pointer(names)),
		0,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if !succeeded(hr) {
		return "", false
	}

	return windows.UTF16ToString(buf), true
}

// placeholderPath builds the conventional font file location for a
// family. The file is not verified to exist; replacing this with a real
// registry lookup would change reported paths for families whose file
// name differs from the family name.
func placeholderPath(family string) string {
	return `C:\Windows\Fonts\` + family + `.ttf`
}
