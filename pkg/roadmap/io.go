package roadmap

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/TaniaPewah/ambroute/pkg/util"
)

// LoadFromCSV reads a streets map from two CSV files.
//
// junctions file: id,lat,lon
// links file: from,to,length_meters (length optional, may be empty)
//
// A header row is skipped when the first field does not parse as a number.
func LoadFromCSV(junctionsPath, linksPath string) (*StreetsMap, error) {
	m := NewStreetsMap()

	err := readCSV(junctionsPath, 3, func(rec []string) error {
		id, err := strconv.ParseUint(rec[0], 10, 32)
		if err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "junction id %q", rec[0])
		}
		lat, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "junction %d lat %q", id, rec[1])
		}
		lon, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "junction %d lon %q", id, rec[2])
		}
		m.AddJunction(JunctionID(id), lat, lon)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readCSV(linksPath, 2, func(rec []string) error {
		from, err := strconv.ParseUint(rec[0], 10, 32)
		if err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "link from %q", rec[0])
		}
		to, err := strconv.ParseUint(rec[1], 10, 32)
		if err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "link to %q", rec[1])
		}
		length := 0.0
		if len(rec) > 2 && rec[2] != "" {
			length, err = strconv.ParseFloat(rec[2], 64)
			if err != nil {
				return util.WrapErrorf(err, util.ErrBadParamInput, "link %d->%d length %q", from, to, rec[2])
			}
		}
		return m.AddLink(JunctionID(from), JunctionID(to), length)
	})
	if err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func readCSV(path string, minFields int, fn func(rec []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(rec) < minFields {
			return util.WrapErrorf(nil, util.ErrBadParamInput, "%s: record %v too short", path, rec)
		}
		if first {
			first = false
			if _, err := strconv.ParseFloat(rec[0], 64); err != nil {
				// header row
				continue
			}
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
