package nutrilens

import (
	"time"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/app"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/service"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/store"
)

func withStore(run func(*store.Store) error) error {
	path := dbPath
	if path == "" {
		resolved, err := app.DefaultDBPath()
		if err != nil {
			return err
		}
		path = resolved
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()
	return run(st)
}

// withSession opens the store and starts a session, which runs the day
// rollover check once before the command body executes.
func withSession(run func(*store.Store, *service.Session) error) error {
	return withStore(func(st *store.Store) error {
		sess, err := service.StartSession(st, time.Now(), logger)
		if err != nil {
			return err
		}
		return run(st, sess)
	})
}
