package boltdb

import (
	"encoding/json"
	"fmt"
	"sort"

	bolt "go.etcd.io/bbolt"

	"klassenbote/calendar"
	"klassenbote/schedule"
	"klassenbote/storage"
)

type LoggerFn func(string, ...interface{})

type repo struct {
	d    *bolt.DB
	root []byte
	path string
	log  LoggerFn
	err  LoggerFn
}

const (
	DefaultFile = "klassenbote.bdb"

	rootBucket     = "klassenbote"
	scheduleBucket = "schedule"
	eventsBucket   = "events"

	datePathFmt = "060102"
)

// Config
type Config struct {
	Path  string
	LogFn LoggerFn
	ErrFn LoggerFn
}

// New returns a new bolt backed repository
func New(c Config) *repo {
	b := repo{
		root: []byte(rootBucket),
		path: c.Path,
		log:  func(string, ...interface{}) {},
		err:  func(string, ...interface{}) {},
	}
	if c.ErrFn != nil {
		b.err = c.ErrFn
	}
	if c.LogFn != nil {
		b.log = c.LogFn
	}

	return &b
}

func (r *repo) open() error {
	var err error
	r.d, err = bolt.Open(r.path, 0600, nil)
	if err != nil {
		return fmt.Errorf("could not open db %s: %w", r.path, err)
	}
	err = r.d.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(r.root)
		if err != nil {
			return fmt.Errorf("unable to create root bucket %s: %w", r.root, err)
		}
		if !root.Writable() {
			return fmt.Errorf("non writeable root bucket %s", r.root)
		}
		return nil
	})
	return err
}

func (r *repo) close() error {
	if r.d == nil {
		return nil
	}
	return r.d.Close()
}

// SaveSchedule overwrites the persisted weekly snapshot wholesale.
func (r *repo) SaveSchedule(w schedule.Weekly) error {
	if err := r.open(); err != nil {
		return err
	}
	defer r.close()

	return r.d.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		if err := root.DeleteBucket([]byte(scheduleBucket)); err != nil && err != bolt.ErrBucketNotFound {
			return fmt.Errorf("unable to reset schedule bucket: %w", err)
		}
		sb, err := root.CreateBucket([]byte(scheduleBucket))
		if err != nil {
			return fmt.Errorf("unable to create schedule bucket: %w", err)
		}
		for _, wd := range calendar.WeekOrder {
			name := calendar.WeekdayName(wd)
			raw, err := json.Marshal(w[name])
			if err != nil {
				return fmt.Errorf("could not marshal day %s: %w", name, err)
			}
			if err = sb.Put([]byte(name), raw); err != nil {
				return fmt.Errorf("could not store day %s: %w", name, err)
			}
		}
		r.log("saved schedule snapshot with %d days", len(w))
		return nil
	})
}

// LoadSchedule reads the persisted snapshot back.
func (r *repo) LoadSchedule() (schedule.Weekly, error) {
	if err := r.open(); err != nil {
		return nil, err
	}
	defer r.close()

	w := make(schedule.Weekly)
	err := r.d.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		sb := root.Bucket([]byte(scheduleBucket))
		if sb == nil {
			return fmt.Errorf("no schedule snapshot present")
		}
		return sb.ForEach(func(k, v []byte) error {
			day := schedule.Day{}
			if err := json.Unmarshal(v, &day); err != nil {
				return fmt.Errorf("could not unmarshal day %s: %w", k, err)
			}
			w[string(k)] = day
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// SaveEvents stores dated events under YY/MM/DD bucket paths, keyed by
// title so re-running a fetch overwrites instead of duplicating.
func (r *repo) SaveEvents(events []calendar.Event) error {
	if err := r.open(); err != nil {
		return err
	}
	defer r.close()

	return r.d.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		eb, err := root.CreateBucketIfNotExists([]byte(eventsBucket))
		if err != nil {
			return fmt.Errorf("unable to create events bucket: %w", err)
		}
		for _, ev := range events {
			if ev.Date.IsZero() {
				continue
			}
			b := eb
			for _, piece := range datePath(ev.Date) {
				if b, err = b.CreateBucketIfNotExists(piece); err != nil {
					return fmt.Errorf("unable to descend to %s: %w", ev.Date, err)
				}
			}
			raw, err := json.Marshal(ev)
			if err != nil {
				r.err("could not marshal event %q: %s", ev.Title, err)
				continue
			}
			if err = b.Put([]byte(ev.Title), raw); err != nil {
				return fmt.Errorf("could not store event %q: %w", ev.Title, err)
			}
		}
		return nil
	})
}

// LoadEvents walks the date buckets between the cursor bounds.
func (r *repo) LoadEvents(cursor storage.DateCursor) ([]calendar.Event, error) {
	if err := r.open(); err != nil {
		return nil, err
	}
	defer r.close()

	min, max := cursorBounds(cursor)
	events := make([]calendar.Event, 0)

	err := r.d.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		eb := root.Bucket([]byte(eventsBucket))
		if eb == nil {
			return nil
		}
		yc := eb.Cursor()
		for yk, _ := yc.First(); yk != nil; yk, _ = yc.Next() {
			yb := eb.Bucket(yk)
			if yb == nil {
				continue
			}
			mc := yb.Cursor()
			for mk, _ := mc.First(); mk != nil; mk, _ = mc.Next() {
				mb := yb.Bucket(mk)
				if mb == nil {
					continue
				}
				dc := mb.Cursor()
				for dk, _ := dc.First(); dk != nil; dk, _ = dc.Next() {
					db := mb.Bucket(dk)
					if db == nil {
						continue
					}
					date := string(yk) + string(mk) + string(dk)
					if date < min || date > max {
						continue
					}
					_ = db.ForEach(func(k, v []byte) error {
						ev := calendar.Event{}
						if err := json.Unmarshal(v, &ev); err != nil {
							r.err("could not unmarshal event %s: %s", k, err)
							return nil
						}
						if ev.IsValid() {
							events = append(events, ev)
						}
						return nil
					})
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].SortDate().Before(events[j].SortDate())
	})
	return events, nil
}

func datePath(d calendar.Date) [][]byte {
	t := d.Time()
	return [][]byte{
		[]byte(t.Format("06")),
		[]byte(t.Format("01")),
		[]byte(t.Format("02")),
	}
}

func cursorBounds(c storage.DateCursor) (string, string) {
	from, to := c.T, c.T.Add(c.D)
	if c.D < 0 {
		from, to = to, from
	}
	return from.Format(datePathFmt), to.Format(datePathFmt)
}

var _ storage.Saver = (*repo)(nil)
var _ storage.Loader = (*repo)(nil)
