//go:build windows

package host

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"github.com/alnah/go-md2docx/internal/process"
)

// wdFormatXMLDocument is the .docx FileFormat code. WPS accepts it too.
const wdFormatXMLDocument = 12

// wdAlertsNone suppresses modal dialogs during automation.
const wdAlertsNone = 0

// sFalse is returned by CoInitializeEx when the thread is already
// initialised; it is not a failure.
const sFalse = 0x00000001

// releaseTimeout bounds Close and Quit, which take no context.
const releaseTimeout = 30 * time.Second

func comBackends() []Backend {
	return []Backend{
		&comBackend{name: NameWord, display: "Microsoft Word", progIDs: wordProgIDs, image: "WINWORD.EXE"},
		&comBackend{name: NameWPS, display: "WPS Office", progIDs: wpsProgIDs, image: "wps.exe"},
	}
}

// comBackend automates a suite through its COM Application object.
type comBackend struct {
	name    string
	display string
	progIDs []string
	image   string
}

// Compile-time interface checks.
var (
	_ Backend     = (*comBackend)(nil)
	_ Application = (*comApp)(nil)
	_ Document    = (*comDoc)(nil)
)

func (b *comBackend) Name() string        { return b.name }
func (b *comBackend) DisplayName() string { return b.display }

// Locate returns the first registered ProgID.
func (b *comBackend) Locate() (string, error) {
	th, err := startApartment()
	if err != nil {
		return "", err
	}
	defer th.stop()

	var found string
	err = th.do(context.Background(), func() error {
		for _, id := range b.progIDs {
			if _, err := ole.CLSIDFromProgID(id); err == nil {
				found = id
				return nil
			}
		}
		return fmt.Errorf("%w: %s not registered", ErrNotFound, b.display)
	})
	return found, err
}

// Launch creates a hidden application instance.
func (b *comBackend) Launch(ctx context.Context) (Application, error) {
	progID, err := b.Locate()
	if err != nil {
		return nil, err
	}

	th, err := startApartment()
	if err != nil {
		return nil, err
	}

	app := &comApp{backend: b, thread: th}
	err = th.do(ctx, func() error {
		clsid, err := ole.CLSIDFromProgID(progID)
		if err != nil {
			return err
		}
		// A running instance belongs to the user: never hide, quit or kill it.
		if running, err := ole.GetActiveObject(clsid, ole.IID_IUnknown); err == nil {
			running.Release()
			app.shared = true
		}

		unknown, err := oleutil.CreateObject(progID)
		if err != nil {
			return fmt.Errorf("creating %s: %w", progID, err)
		}
		defer unknown.Release()

		disp, err := unknown.QueryInterface(ole.IID_IDispatch)
		if err != nil {
			return fmt.Errorf("querying %s: %w", progID, err)
		}
		app.disp = disp

		if !ownsWindow(app.shared) {
			return nil
		}
		if _, err := oleutil.PutProperty(disp, "Visible", false); err != nil {
			return fmt.Errorf("hiding window: %w", err)
		}
		// Not every WPS build exposes DisplayAlerts.
		_, _ = oleutil.PutProperty(disp, "DisplayAlerts", wdAlertsNone)
		return nil
	})
	if err != nil {
		_ = app.Quit()
		return nil, err
	}
	return app, nil
}

type comApp struct {
	backend *comBackend
	thread  *apartment
	disp    *ole.IDispatch
	shared  bool
	quit    sync.Once
}

func (a *comApp) Open(ctx context.Context, path string) (Document, error) {
	doc := &comDoc{app: a}
	err := a.thread.do(ctx, func() error {
		docs, err := oleutil.GetProperty(a.disp, "Documents")
		if err != nil {
			return err
		}
		docsDisp := docs.ToIDispatch()
		defer docsDisp.Release()

		opened, err := oleutil.CallMethod(docsDisp, "Open", path)
		if err != nil {
			return err
		}
		doc.disp = opened.ToIDispatch()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Quit asks the application to exit. A hung or unresponsive instance that
// this process started is killed.
func (a *comApp) Quit() error {
	var err error
	a.quit.Do(func() {
		err = a.release()
	})
	return err
}

func (a *comApp) release() error {
	defer a.thread.stop()

	hung := a.thread.hung.Load()
	switch releasePlan(a.shared, hung) {
	case releaseKill:
		process.KillImage(a.backend.image)
		return ErrUnresponsive
	case releaseDetach:
		if hung {
			return ErrUnresponsive
		}
		return a.detach()
	}

	if a.disp == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	err := a.thread.do(ctx, func() error {
		defer a.disp.Release()
		_, err := oleutil.CallMethod(a.disp, "Quit")
		return err
	})
	if err != nil {
		a.forceKill()
	}
	return err
}

// detach drops the reference to a shared instance without quitting it.
func (a *comApp) detach() error {
	if a.disp == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()
	return a.thread.do(ctx, func() error {
		a.disp.Release()
		return nil
	})
}

func (a *comApp) forceKill() {
	if releasePlan(a.shared, true) != releaseKill {
		return
	}
	process.KillImage(a.backend.image)
}

type comDoc struct {
	app  *comApp
	disp *ole.IDispatch
}

func (d *comDoc) SetMargins(ctx context.Context, points float64) error {
	return d.app.thread.do(ctx, func() error {
		ps, err := oleutil.GetProperty(d.disp, "PageSetup")
		if err != nil {
			return err
		}
		setup := ps.ToIDispatch()
		defer setup.Release()

		for _, side := range []string{"TopMargin", "BottomMargin", "LeftMargin", "RightMargin"} {
			if _, err := oleutil.PutProperty(setup, side, points); err != nil {
				return fmt.Errorf("%s: %w", side, err)
			}
		}
		return nil
	})
}

// SaveAs prefers SaveAs2 (Word 2010+, current WPS) and falls back to the
// older SaveAs method.
func (d *comDoc) SaveAs(ctx context.Context, path string) error {
	return d.app.thread.do(ctx, func() error {
		_, err := oleutil.CallMethod(d.disp, "SaveAs2", path, wdFormatXMLDocument)
		if err == nil {
			return nil
		}
		if _, legacy := oleutil.CallMethod(d.disp, "SaveAs", path, wdFormatXMLDocument); legacy != nil {
			return errors.Join(err, legacy)
		}
		return nil
	})
}

func (d *comDoc) Close() error {
	if d.disp == nil || d.app.thread.hung.Load() {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	return d.app.thread.do(ctx, func() error {
		defer d.disp.Release()
		_, err := oleutil.CallMethod(d.disp, "Close", false)
		return err
	})
}

// apartment is a single-threaded COM apartment: one locked OS thread that
// runs every call made against the objects it created.
type apartment struct {
	calls chan func()
	hung  atomic.Bool
	once  sync.Once
}

func startApartment() (*apartment, error) {
	a := &apartment{calls: make(chan func())}
	ready := make(chan error, 1)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
			var oleErr *ole.OleError
			if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
				ready <- fmt.Errorf("initialising COM: %w", err)
				return
			}
		}
		defer ole.CoUninitialize()
		ready <- nil

		for call := range a.calls {
			call()
		}
	}()

	if err := <-ready; err != nil {
		return nil, err
	}
	return a, nil
}

// do runs fn on the apartment thread. If ctx ends first the apartment is
// marked hung: the call may never return, so later calls are refused.
func (a *apartment) do(ctx context.Context, fn func() error) error {
	if a.hung.Load() {
		return ErrUnresponsive
	}

	result := make(chan error, 1)
	call := func() {
		defer func() {
			if r := recover(); r != nil {
				result <- fmt.Errorf("COM call panicked: %v", r)
			}
		}()
		result <- fn()
	}

	select {
	case a.calls <- call:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		a.hung.Store(true)
		return ctx.Err()
	}
}

// stop ends the apartment goroutine once the pending call returns.
func (a *apartment) stop() {
	a.once.Do(func() { close(a.calls) })
}
