// Package nav provides the navigation stack behind the game's menus and
// dialogs.
//
// A session owns one Controller holding a stack of entries. The bottom
// entry is the root screen (the town) and is never removed, so there is
// always something to return to. Every entry above the root records the
// back action chosen at presentation time, which makes back navigation
// deterministic instead of being reconstructed from wherever state
// happens to live when the player presses back.
//
// # Basic Usage
//
//	town := ui.NewMenu("town", "Town of Mirun", items)
//	ctrl, err := nav.New(nav.Config{Root: town, Logger: log})
//	if err != nil {
//	    return err
//	}
//
//	// Forward: present a facility menu over the town.
//	ctrl.Present(guildMenu, nav.ToPrevious())
//
//	// A dialog whose predecessor must be rebuilt on the way back:
//	ctrl.PresentWith(confirm, func(c *nav.Controller, ctx nav.Context) error {
//	    return c.Present(buildShopMenu(ctx), nav.ToPrevious())
//	}, nav.Context{"item": itemID})
//
//	// Back: pops the dialog, then runs its back action.
//	ctrl.GoBack()
//
// # Back Actions
//
// Popping reveals and shows the screen beneath. The popped entry's back
// action then decides the final destination: ToPrevious accepts the
// revealed screen, ToRoot clears the stack, and a custom action may
// present a rebuilt predecessor using the entry's context.
//
// A back action that fails does not strand the player. The controller
// logs the failure, clears the stack to the root, and shows the root
// screen again.
//
// # Threading
//
// The controller is confined to the session goroutine and does no
// locking. Only Recoveries and LastRecovery may be read from other
// goroutines; anything else, including Snapshot, must be serialized by
// the owner.
package nav
