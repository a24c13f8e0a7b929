/*
Package pending schedules filesystem mutations for the next system reboot
and creates volatile registry keys, using the Windows pending file rename
mechanism and the volatile key option.

# Quick Start

Schedule a locked file for deletion at the next boot:

	c := pending.New(pending.Config{Log: logger})
	err := c.RemoveFileOnReboot(`C:\Program Files\App\app.dll`, nil)

Move a file into place during the boot sequence, replacing the target:

	err := c.MoveFileOnReboot(src, dst, &pending.MoveOptions{
	    ReplaceExisting: true,
	    ContinueOnError: true,
	})

Create a volatile marker key that disappears at logoff/shutdown:

	err := c.CreateVolatileKey(`HKEY_LOCAL_MACHINE\SOFTWARE\MyApp\RebootPending`, nil)

# Semantics

Success for the file operations means the request was enqueued on the OS
pending-operations list, which executes early in the next boot sequence.
Completion is outside this package's observability. The list is additive:
scheduling the same path twice enqueues two independent entries.

Pre-flight existence and entry-type checks are advisory only. They produce
warnings but never block the native call, since the scheduled operation may
legitimately target a path created later in the session.

# Failure Policy

Every failure maps to a fixed exit code (see pkg/types). With
ContinueOnError (the default), failures are logged and returned as typed
errors. With ContinueOnError false, a Config with ExitOnError set
terminates the process via Config.Exit with the failure's code; otherwise
the typed error is the fatal signal.

All operations require administrative elevation, checked before any native
call is attempted.
*/
package pending
