package vip

import (
	"sort"

	"github.com/google/uuid"
)

// RowSize is how many tables a display row holds.
const RowSize = 5

// Optional marks whether a value was supplied at all.
type Optional[T any] struct {
	Present bool
	Value   T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OptionalFromPtr maps a nullable column to an Optional.
func OptionalFromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Optional[T]) OrElse(fallback T) T {
	if o.Present {
		return o.Value
	}
	return fallback
}

// DayOverride is a table's exception for one day. Each field may be absent.
type DayOverride struct {
	Capacity Optional[int]
	Enabled  Optional[bool]
}

func (o TableDayOverride) DayOverride() DayOverride {
	return DayOverride{
		Capacity: OptionalFromPtr(o.CapacityOverride),
		Enabled:  OptionalFromPtr(o.IsEnabled),
	}
}

// ResolveTableDay applies an optional override to a table's base values.
// No override means base capacity, enabled.
func ResolveTableDay(table Table, override Optional[DayOverride]) (capacity int, enabled bool) {
	capacity, enabled = table.Capacity, true
	if !override.Present {
		return capacity, enabled
	}
	return override.Value.Capacity.OrElse(capacity), override.Value.Enabled.OrElse(enabled)
}

type TableAvailability struct {
	TableID     uuid.UUID `json:"table_id"`
	ZoneID      uuid.UUID `json:"zone_id"`
	TableNumber int       `json:"table_number"`
	SortOrder   int       `json:"sort_order"`
	Capacity    int       `json:"capacity"`
	Reserved    int       `json:"reserved"`
	EmptySeats  int       `json:"empty_seats"`
	IsEnabled   bool      `json:"is_enabled"`
	IsAvailable bool      `json:"is_available"`
}

type ZoneAvailability struct {
	ZoneID          uuid.UUID             `json:"zone_id"`
	Code            string                `json:"code"`
	Name            string                `json:"name"`
	SortOrder       int                   `json:"sort_order"`
	TotalTables     int                   `json:"total_tables"`
	TotalCapacity   int                   `json:"total_capacity"`
	TotalEmptySeats int                   `json:"total_empty_seats"`
	Tables          []TableAvailability   `json:"tables"`
	Rows            [][]TableAvailability `json:"rows"`
}

// Snapshot is everything the calculator reads for one day.
type Snapshot struct {
	DayID        uuid.UUID
	Zones        []Zone
	Tables       []Table
	Overrides    []TableDayOverride
	Reservations []Reservation
}

// ComputeTable derives one table's numbers for a day.
func ComputeTable(table Table, override Optional[DayOverride], reserved int) TableAvailability {
	capacity, enabled := ResolveTableDay(table, override)

	empty := 0
	if enabled {
		empty = max(0, capacity-reserved)
	}

	return TableAvailability{
		TableID:     table.ID,
		ZoneID:      table.ZoneID,
		TableNumber: table.TableNumber,
		SortOrder:   table.SortOrder,
		Capacity:    capacity,
		Reserved:    reserved,
		EmptySeats:  empty,
		IsEnabled:   enabled,
		IsAvailable: enabled && empty > 0,
	}
}

// ReservedSeats sums seats per table over reservations that hold seats on dayID.
func ReservedSeats(dayID uuid.UUID, reservations []Reservation) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int)
	for _, r := range reservations {
		if !r.Status.HoldsSeats() || !r.CoversDay(dayID) {
			continue
		}
		out[r.TableID] += r.SeatsReserved
	}
	return out
}

// OverridesForDay indexes the overrides that apply to dayID by table.
func OverridesForDay(dayID uuid.UUID, overrides []TableDayOverride) map[uuid.UUID]DayOverride {
	out := make(map[uuid.UUID]DayOverride, len(overrides))
	for _, o := range overrides {
		if o.EventDayID != dayID {
			continue
		}
		out[o.TableID] = o.DayOverride()
	}
	return out
}

func lookupOverride(index map[uuid.UUID]DayOverride, tableID uuid.UUID) Optional[DayOverride] {
	if o, ok := index[tableID]; ok {
		return Some(o)
	}
	return None[DayOverride]()
}

// ComputeAvailability groups per-table availability by zone.
// Zones come out by (sort order, code) and tables by (sort order, table number).
// Inactive zones and tables, and tables of unknown zones, are skipped.
func ComputeAvailability(in Snapshot) []ZoneAvailability {
	reserved := ReservedSeats(in.DayID, in.Reservations)
	overrides := OverridesForDay(in.DayID, in.Overrides)

	zones := make([]Zone, 0, len(in.Zones))
	for _, z := range in.Zones {
		if z.IsActive {
			zones = append(zones, z)
		}
	}
	sort.SliceStable(zones, func(i, j int) bool {
		if zones[i].SortOrder != zones[j].SortOrder {
			return zones[i].SortOrder < zones[j].SortOrder
		}
		return zones[i].Code < zones[j].Code
	})

	byZone := make(map[uuid.UUID][]TableAvailability, len(zones))
	for _, t := range in.Tables {
		if !t.IsActive {
			continue
		}
		byZone[t.ZoneID] = append(byZone[t.ZoneID], ComputeTable(t, lookupOverride(overrides, t.ID), reserved[t.ID]))
	}

	out := make([]ZoneAvailability, 0, len(zones))
	for _, z := range zones {
		tables := byZone[z.ID]
		sort.SliceStable(tables, func(i, j int) bool {
			if tables[i].SortOrder != tables[j].SortOrder {
				return tables[i].SortOrder < tables[j].SortOrder
			}
			return tables[i].TableNumber < tables[j].TableNumber
		})

		za := ZoneAvailability{
			ZoneID:      z.ID,
			Code:        z.Code,
			Name:        z.Name,
			SortOrder:   z.SortOrder,
			TotalTables: len(tables),
			Tables:      tables,
			Rows:        chunkRows(tables, RowSize),
		}
		if za.Tables == nil {
			za.Tables = []TableAvailability{}
		}
		for _, t := range tables {
			za.TotalCapacity += t.Capacity
			za.TotalEmptySeats += t.EmptySeats
		}
		out = append(out, za)
	}
	return out
}

func chunkRows(tables []TableAvailability, size int) [][]TableAvailability {
	rows := make([][]TableAvailability, 0, (len(tables)+size-1)/size)
	for start := 0; start < len(tables); start += size {
		end := min(start+size, len(tables))
		rows = append(rows, tables[start:end])
	}
	return rows
}
