package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"log"
	"strconv"

	"git.lost.host/meutraa/beatgrid/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultCache struct {
	db *sql.DB
}

// MarkersCompact is the stored form of a grid: all line times plus the
// indexes of the major ones.
type MarkersCompact struct {
	Times  []float64 `json:"t"`
	Majors []int     `json:"m"`
}

func compactMarkers(markers []game.Marker) MarkersCompact {
	c := MarkersCompact{Times: make([]float64, len(markers)), Majors: []int{}}
	for i, m := range markers {
		c.Times[i] = m.Time
		if m.Major {
			c.Majors = append(c.Majors, i)
		}
	}
	return c
}

func uncompactMarkers(c MarkersCompact) []game.Marker {
	markers := make([]game.Marker, len(c.Times))
	for i, t := range c.Times {
		markers[i] = game.Marker{Time: t}
	}
	for _, i := range c.Majors {
		if i >= 0 && i < len(markers) {
			markers[i].Major = true
		}
	}
	return markers
}

// Key hashes the control points and the track end so any change to the
// inputs misses the cache.
func Key(segments []game.TimingSegment, flags []game.SuppressionFlag, trackEndTime float64) string {
	data, err := json.Marshal(struct {
		Segments []game.TimingSegment   `json:"segments"`
		Flags    []game.SuppressionFlag `json:"flags"`
		End      string                 `json:"end"`
	}{segments, flags, strconv.FormatFloat(trackEndTime, 'g', -1, 64)})
	if nil != err {
		log.Println("unable to hash control points", err)
		return ""
	}
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (c *DefaultCache) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists grids
	  (
		  id integer not null primary key,
		  sum text unique,
		  markers bytearray
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		return err
	}

	c.db = db
	return nil
}

func (c *DefaultCache) Deinit() {
	if nil != c.db {
		c.db.Close()
	}
}

func (c *DefaultCache) Save(key string, markers []game.Marker) {
	if key == "" {
		return
	}
	data, err := json.Marshal(compactMarkers(markers))
	if nil != err {
		log.Println("unable to marshal grid", err)
		return
	}
	_, err = c.db.Exec("insert or replace into grids(sum, markers) values(?, ?)", key, data)
	if nil != err {
		log.Println("unable to save grid", err)
		return
	}
}

func (c *DefaultCache) Load(key string) ([]game.Marker, bool) {
	var data []byte
	err := c.db.QueryRow("select markers from grids where sum = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if nil != err {
		log.Println("unable to load grid", err)
		return nil, false
	}
	var compact MarkersCompact
	if err := json.Unmarshal(data, &compact); nil != err {
		log.Println("unable to unmarshal grid", err)
		return nil, false
	}
	return uncompactMarkers(compact), true
}
