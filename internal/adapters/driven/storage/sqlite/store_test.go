package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// setupTestStore creates an isolated SQLite store in a per-test directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store
}

func hh(n string) *string { return &n }

func newResident(first, last string) domain.Resident {
	return domain.Resident{FirstName: first, LastName: last, Status: domain.ResidentActive}
}

func householdMember(first, last, household string, role domain.HouseholdRole, income int64) domain.Resident {
	r := newResident(first, last)
	r.HouseholdNumber = hh(household)
	r.RoleInHousehold = role
	r.AverageMonthlyIncome = income
	return r
}

// ==================== Store Creation ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore(context.Background(), "/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(context.Background(), dir)
	require.NoError(t, err)
	defer store.Close()

	dbPath := filepath.Join(dir, DatabaseFile)
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "nested", "path", "to", "db")

	store, err := NewStore(context.Background(), nested)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nested)
}

func TestNewStore_CreatesAllTables(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, table := range []string{"settings", "residents", "map_pins", "officials", "blotters", "ledger_entries", "events"} {
		exists, err := tableExists(ctx, store.db, table)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist", table)
	}

	exists, err := tableExists(ctx, store.db, "schema_migrations")
	require.NoError(t, err)
	assert.False(t, exists, "no version tracking table is kept")
}

func TestNewStore_Pragmas(t *testing.T) {
	store := setupTestStore(t)

	var fk int
	require.NoError(t, store.db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)

	var mode string
	require.NoError(t, store.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestStore_Close(t *testing.T) {
	store, err := NewStore(context.Background(), t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Error(t, store.db.Ping())
}

func TestStore_RepositoryGetters(t *testing.T) {
	store := setupTestStore(t)

	assert.NotNil(t, store.ResidentStore())
	assert.NotNil(t, store.MapPinStore())
	assert.NotNil(t, store.OfficialStore())
	assert.NotNil(t, store.BlotterStore())
	assert.NotNil(t, store.LedgerStore())
	assert.NotNil(t, store.EventStore())
	assert.NotNil(t, store.SettingsStore())
	assert.NotNil(t, store.HouseholdQuery())
}

// ==================== Schema ====================

func TestEnsureSchema_Idempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.ResidentStore().Insert(ctx, newResident("Juan", "Dela Cruz"))
	require.NoError(t, err)

	require.NoError(t, EnsureSchema(ctx, store.db))
	require.NoError(t, EnsureSchema(ctx, store.db))

	all, err := store.ResidentStore().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "re-running the schema must not touch data")
}

func TestEnsureSchema_ReopenExistingFile(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(ctx, dir)
	require.NoError(t, err)
	_, err = first.MapPinStore().Insert(ctx, domain.MapPin{Name: "Pin"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(ctx, dir)
	require.NoError(t, err)
	defer second.Close()

	pins, err := second.MapPinStore().List(ctx)
	require.NoError(t, err)
	assert.Len(t, pins, 1)
}

func TestEnsureSchema_AddsMissingColumns(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// Recreate the residents table as an earlier release shipped it.
	defs := []string{"id INTEGER PRIMARY KEY AUTOINCREMENT"}
	for _, col := range residentColumns {
		added := false
		for _, a := range addedColumns {
			if a.table == "residents" && a.column == col {
				added = true
			}
		}
		if !added {
			defs = append(defs, col+" TEXT")
		}
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, DatabaseFile)+dsnParams)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE residents (" + strings.Join(defs, ", ") + ")")
	require.NoError(t, err)
	has, err := columnExists(ctx, db, "residents", "is_solo_parent")
	require.NoError(t, err)
	require.False(t, has)
	_, err = db.Exec(`INSERT INTO residents (first_name, last_name) VALUES ('Old', 'Row')`)
	require.NoError(t, err)

	require.NoError(t, EnsureSchema(ctx, db))

	has, err = columnExists(ctx, db, "residents", "is_solo_parent")
	require.NoError(t, err)
	assert.True(t, has)
	has, err = columnExists(ctx, db, "residents", "source_of_income")
	require.NoError(t, err)
	assert.True(t, has)

	var soloParent int
	require.NoError(t, db.QueryRow("SELECT is_solo_parent FROM residents WHERE first_name = 'Old'").Scan(&soloParent))
	assert.Zero(t, soloParent)
	require.NoError(t, db.Close())
}

func TestEnsureSchema_ImportsLegacyPins(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(dir, DatabaseFile)+dsnParams)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE barangay_map (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		x REAL,
		y REAL,
		zone TEXT
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO barangay_map (name, x, y, zone) VALUES
		('Juan Dela Cruz', 1.5, 2.5, '1'),
		('Juan Dela Cruz', 9, 9, '9'),
		('  ', 0, 0, ''),
		('Maria Santos', 3, 4, NULL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := NewStore(ctx, dir)
	require.NoError(t, err)
	defer store.Close()

	pins, err := store.MapPinStore().List(ctx)
	require.NoError(t, err)
	require.Len(t, pins, 2)
	assert.Equal(t, "Juan Dela Cruz", pins[0].Name)
	assert.Equal(t, "1", pins[0].Zone)
	assert.InDelta(t, 1.5, pins[0].X, 0.0001)
	assert.Equal(t, "Maria Santos", pins[1].Name)
	assert.Empty(t, pins[1].Zone)

	legacy, err := tableExists(ctx, store.db, "barangay_map")
	require.NoError(t, err)
	assert.True(t, legacy, "legacy table is left in place")

	// A second start does not import again.
	require.NoError(t, store.MapPinStore().Delete(ctx, pins[1].ID))
	require.NoError(t, EnsureSchema(ctx, store.db))
	pins, err = store.MapPinStore().List(ctx)
	require.NoError(t, err)
	assert.Len(t, pins, 1)
}

func TestEnsureSchema_DeletedPinsStayDeletedAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(dir, DatabaseFile)+dsnParams)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE barangay_map (id INTEGER PRIMARY KEY, name TEXT, x REAL, y REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO barangay_map (name, x, y) VALUES ('Juan Dela Cruz', 1, 2)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	first, err := NewStore(ctx, dir)
	require.NoError(t, err)
	pins, err := first.MapPinStore().List(ctx)
	require.NoError(t, err)
	require.Len(t, pins, 1)
	require.NoError(t, first.MapPinStore().Delete(ctx, pins[0].ID))
	require.NoError(t, first.Close())

	second, err := NewStore(ctx, dir)
	require.NoError(t, err)
	defer second.Close()

	pins, err = second.MapPinStore().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pins)
}

// earlyReleaseDDL is the layout the first desktop release created.
const earlyReleaseDDL = `
	CREATE TABLE blotters (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type_ TEXT NOT NULL,
		reported_by TEXT NOT NULL,
		involved TEXT NOT NULL,
		incident_date TEXT NOT NULL,
		location TEXT NOT NULL,
		zone TEXT NOT NULL,
		status TEXT NOT NULL,
		narrative TEXT NOT NULL,
		action TEXT NOT NULL,
		witnesses TEXT NOT NULL,
		evidence TEXT NOT NULL,
		resolution TEXT NOT NULL,
		hearing_date TEXT NOT NULL
	);
	CREATE TABLE incomes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type_ TEXT NOT NULL,
		amount REAL NOT NULL,
		or_number INTEGER NOT NULL,
		received_from TEXT NOT NULL,
		received_by TEXT NOT NULL,
		category TEXT NOT NULL,
		date TEXT NOT NULL
	);
`

func TestEnsureSchema_ConvergesEarlyReleaseDatabase(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(dir, DatabaseFile)+dsnParams)
	require.NoError(t, err)
	_, err = db.Exec(earlyReleaseDDL)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO blotters
		(type_, reported_by, involved, incident_date, location, zone, status,
		 narrative, action, witnesses, evidence, resolution, hearing_date)
		VALUES ('Noise', 'Ana Cruz', 'Neighbor', '2024-05-01', 'Purok 2', '2', 'Open', '', '', '', '', '', '')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO incomes (type_, amount, or_number, received_from, received_by, category, date)
		VALUES ('Clearance', 50.25, 1001, 'Pedro Reyes', 'Treasurer', 'Service Revenue', '2024-05-02')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := NewStore(ctx, dir)
	require.NoError(t, err)

	blotters, err := store.BlotterStore().List(ctx)
	require.NoError(t, err)
	require.Len(t, blotters, 1)
	assert.Equal(t, "Noise", blotters[0].Type)
	assert.Equal(t, "Ana Cruz", blotters[0].ReportedBy)

	_, err = store.BlotterStore().Insert(ctx, domain.Blotter{
		Type: "Theft", ReportedBy: "Lito Ramos", IncidentDate: "2024-06-01", Status: domain.BlotterOpen,
	})
	require.NoError(t, err)

	entries, err := store.LedgerStore().List(ctx, domain.LedgerIncome)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Clearance", entries[0].Type)
	assert.Equal(t, int64(5025), entries[0].AmountCentavos)
	assert.Equal(t, "1001", entries[0].ReferenceNumber)
	assert.Equal(t, "Pedro Reyes", entries[0].Counterparty)
	assert.Equal(t, "Treasurer", entries[0].HandledBy)

	// Deleting the imported entry survives a restart.
	require.NoError(t, store.LedgerStore().Delete(ctx, entries[0].ID))
	require.NoError(t, store.Close())

	reopened, err := NewStore(ctx, dir)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err = reopened.LedgerStore().List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEnsureSchema_UnconvergedTableFailsStartup(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(dir, DatabaseFile)+dsnParams)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE events (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := NewStore(ctx, dir)
	assert.Nil(t, store)
	require.ErrorIs(t, err, domain.ErrSchema)
	assert.Contains(t, err.Error(), "events.type")
}

// ==================== Residents ====================

func TestResidentStore_InsertThenListRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	repo := store.ResidentStore()
	ctx := context.Background()

	in := householdMember("Juan", "Dela Cruz", "HH1", domain.RoleHead, 5000)
	in.Prefix = "Mr."
	in.MiddleName = "Santos"
	in.DateOfBirth = "1980-05-17"
	in.SourceOfIncome = "Farming"
	in.FatherFirstName = "Pedro"
	in.MotherLastName = "Reyes"
	in.IsRegisteredVoter = true
	in.IsSoloParent = true

	id, err := repo.Insert(ctx, in)
	require.NoError(t, err)
	assert.Positive(t, id)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	in.ID = id
	assert.Equal(t, in, all[0])
}

func TestResidentStore_NullHousehold(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	id, err := store.ResidentStore().Insert(ctx, newResident("Ana", "Santos"))
	require.NoError(t, err)

	got, err := store.ResidentStore().Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.HouseholdNumber)
}

func TestResidentStore_ListEmpty(t *testing.T) {
	store := setupTestStore(t)

	all, err := store.ResidentStore().List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestResidentStore_GetNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.ResidentStore().Get(context.Background(), 12345)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResidentStore_UpdateMissingReturnsZero(t *testing.T) {
	store := setupTestStore(t)
	r := newResident("Ghost", "Person")
	r.ID = 999

	affected, err := store.ResidentStore().Update(context.Background(), r)

	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestResidentStore_Update(t *testing.T) {
	store := setupTestStore(t)
	repo := store.ResidentStore()
	ctx := context.Background()

	id, err := repo.Insert(ctx, newResident("Ana", "Santos"))
	require.NoError(t, err)

	r := householdMember("Ana", "Reyes", "HH3", domain.RoleSpouse, 1200)
	r.ID = id
	affected, err := repo.Update(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, r, *got)
}

func TestResidentStore_DeleteIdempotent(t *testing.T) {
	store := setupTestStore(t)
	repo := store.ResidentStore()
	ctx := context.Background()

	id, err := repo.Insert(ctx, newResident("Ana", "Santos"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	require.NoError(t, repo.Delete(ctx, id))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestResidentStore_DeleteMany(t *testing.T) {
	store := setupTestStore(t)
	repo := store.ResidentStore()
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"A", "B", "C", "D"} {
		id, err := repo.Insert(ctx, newResident(name, "Test"))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	require.NoError(t, repo.DeleteMany(ctx, []int64{ids[0], ids[2], 9999}))
	require.NoError(t, repo.DeleteMany(ctx, []int64{ids[0], ids[2]}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ids[1], all[0].ID)
	assert.Equal(t, ids[3], all[1].ID)
}

// ==================== Map Pins ====================

func TestMapPinStore_DuplicateName(t *testing.T) {
	store := setupTestStore(t)
	repo := store.MapPinStore()
	ctx := context.Background()

	_, err := repo.Insert(ctx, domain.MapPin{Name: "Juan Dela Cruz", X: 1, Y: 2})
	require.NoError(t, err)

	_, err = repo.Insert(ctx, domain.MapPin{Name: "Juan Dela Cruz", X: 3, Y: 4})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	pins, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, pins, 1)
}

func TestMapPinStore_UpdateRenameToTakenName(t *testing.T) {
	store := setupTestStore(t)
	repo := store.MapPinStore()
	ctx := context.Background()

	_, err := repo.Insert(ctx, domain.MapPin{Name: "A"})
	require.NoError(t, err)
	id, err := repo.Insert(ctx, domain.MapPin{Name: "B"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, domain.MapPin{ID: id, Name: "A"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	affected, err := repo.Update(ctx, domain.MapPin{ID: 999, Name: "C"})
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestMapPinStore_InsertFromResident(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	residentID, err := store.ResidentStore().Insert(ctx, newResident("Juan", "Dela Cruz"))
	require.NoError(t, err)

	pinID, err := store.MapPinStore().InsertFromResident(ctx, residentID,
		domain.MapPin{Name: "whatever", X: 10.25, Y: 20.5, HouseNumber: "7", Zone: "2", Section: "A"})
	require.NoError(t, err)

	pin, err := store.MapPinStore().Get(ctx, pinID)
	require.NoError(t, err)
	assert.Equal(t, "Juan Dela Cruz", pin.Name)
	assert.Equal(t, "7", pin.HouseNumber)

	_, err = store.MapPinStore().InsertFromResident(ctx, residentID, domain.MapPin{})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = store.MapPinStore().InsertFromResident(ctx, residentID+100, domain.MapPin{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMapPinStore_InsertFromResidentConcurrent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	residentID, err := store.ResidentStore().Insert(ctx, newResident("Juan", "Dela Cruz"))
	require.NoError(t, err)

	const workers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.MapPinStore().InsertFromResident(ctx, residentID, domain.MapPin{X: 1, Y: 1})
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		dup++
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, dup)

	pins, err := store.MapPinStore().List(ctx)
	require.NoError(t, err)
	assert.Len(t, pins, 1)
}

// ==================== Households ====================

func TestHouseholdQuery_IncomeTotals(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	for _, r := range []domain.Resident{
		householdMember("A", "One", "HH1", domain.RoleHead, 5000),
		householdMember("B", "One", "HH1", domain.RoleSpouse, 3000),
		householdMember("C", "Two", "HH2", domain.RoleHead, 7000),
		newResident("D", "Nobody"),
	} {
		_, err := store.ResidentStore().Insert(ctx, r)
		require.NoError(t, err)
	}

	totals, err := store.HouseholdQuery().IncomeTotals(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.HouseholdIncome{
		{HouseholdNumber: "HH1", TotalIncome: 8000},
		{HouseholdNumber: "HH2", TotalIncome: 7000},
	}, totals)
}

func TestHouseholdQuery_HeadsOnly(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	head := householdMember("Maria", "Lopez", "HH1", domain.RoleHead, 0)
	head.IsSenior = true
	for _, r := range []domain.Resident{
		head,
		householdMember("Jose", "Lopez", "HH1", domain.RoleChild, 0),
		householdMember("Ana", "Cruz", "HH2", domain.RoleMember, 0),
	} {
		_, err := store.ResidentStore().Insert(ctx, r)
		require.NoError(t, err)
	}

	heads, err := store.HouseholdQuery().Heads(ctx)

	require.NoError(t, err)
	require.Len(t, heads, 1)
	assert.Equal(t, "Maria", heads[0].FirstName)
	assert.Equal(t, "HH1", heads[0].HouseholdNumber)
	assert.True(t, heads[0].IsSenior)
}

func TestHouseholdQuery_MembersAndFlags(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	pwd := householdMember("A", "One", "HH1", domain.RoleHead, 0)
	pwd.IsPWD = true
	pwd2 := householdMember("B", "One", "HH1", domain.RoleChild, 0)
	pwd2.IsPWD = true
	senior := householdMember("C", "Two", "HH2", domain.RoleHead, 0)
	senior.IsSenior = true
	loner := newResident("D", "Three")
	loner.IsPWD = true
	for _, r := range []domain.Resident{pwd, pwd2, senior, loner} {
		_, err := store.ResidentStore().Insert(ctx, r)
		require.NoError(t, err)
	}
	q := store.HouseholdQuery()

	members, err := q.Members(ctx, "HH1")
	require.NoError(t, err)
	assert.Len(t, members, 2)

	none, err := q.Members(ctx, "HH404")
	require.NoError(t, err)
	assert.Empty(t, none)

	withPWD, err := q.WithPWD(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"HH1"}, withPWD)

	withSenior, err := q.WithSenior(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"HH2"}, withSenior)
}

// ==================== Officials, Blotters, Ledger, Events, Settings ====================

func TestOfficialStore_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	repo := store.OfficialStore()
	ctx := context.Background()

	in := domain.Official{
		Name: "Rosa Bautista", Role: domain.OfficialCaptain, Type: domain.OfficialTypeBarangay,
		Section: "Executive", Age: 52, Contact: "0917", TermStart: "2023-11-30", TermEnd: "2026-11-30",
		Zone: "1", Image: "rosa.png",
	}
	id, err := repo.Insert(ctx, in)
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	in.ID = id
	assert.Equal(t, []domain.Official{in}, all)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlotterStore_PatchLeavesIdentity(t *testing.T) {
	store := setupTestStore(t)
	repo := store.BlotterStore()
	ctx := context.Background()

	in := domain.Blotter{
		Type: "Theft", ReportedBy: "Lito Ramos", Involved: "Unknown", IncidentDate: "2025-03-01",
		Location: "Market", Zone: "4", Status: domain.BlotterOpen, Narrative: "Bag stolen",
	}
	id, err := repo.Insert(ctx, in)
	require.NoError(t, err)

	status := domain.BlotterResolved
	resolution := "Item returned"
	affected, err := repo.Patch(ctx, id, domain.BlotterPatch{Status: &status, Resolution: &resolution})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	want := in
	want.ID = id
	want.Status = domain.BlotterResolved
	want.Resolution = "Item returned"
	assert.Equal(t, want, *got)

	affected, err = repo.Patch(ctx, 9999, domain.BlotterPatch{Status: &status})
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestLedgerStore_ListAndTotals(t *testing.T) {
	store := setupTestStore(t)
	repo := store.LedgerStore()
	ctx := context.Background()

	for _, e := range []domain.LedgerEntry{
		{Kind: domain.LedgerIncome, Type: "Clearance", Category: domain.CategoryServiceRevenue, AmountCentavos: 5000, Date: "2025-01-01"},
		{Kind: domain.LedgerIncome, Type: "Clearance", Category: domain.CategoryServiceRevenue, AmountCentavos: 2500, Date: "2025-01-02"},
		{Kind: domain.LedgerIncome, Type: "Permit", Category: domain.CategoryTaxRevenue, AmountCentavos: 10000, Date: "2025-01-03"},
		{Kind: domain.LedgerExpense, Type: "Power", Category: domain.CategoryUtilities, AmountCentavos: 40000, Date: "2025-01-31"},
	} {
		_, err := repo.Insert(ctx, e)
		require.NoError(t, err)
	}

	income, err := repo.List(ctx, domain.LedgerIncome)
	require.NoError(t, err)
	assert.Len(t, income, 3)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	totals, err := repo.Totals(ctx, domain.LedgerIncome)
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryTotal{
		{Kind: domain.LedgerIncome, Category: domain.CategoryServiceRevenue, AmountCentavos: 7500, Entries: 2},
		{Kind: domain.LedgerIncome, Category: domain.CategoryTaxRevenue, AmountCentavos: 10000, Entries: 1},
	}, totals)

	both, err := repo.Totals(ctx, "")
	require.NoError(t, err)
	require.Len(t, both, 3)
	assert.Equal(t, domain.LedgerExpense, both[0].Kind)
}

func TestLedgerStore_KindCheckConstraint(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.LedgerStore().Insert(context.Background(), domain.LedgerEntry{
		Kind: "refund", Type: "x", Category: "y", AmountCentavos: 1, Date: "2025-01-01",
	})

	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestEventStore_UpdateAndDelete(t *testing.T) {
	store := setupTestStore(t)
	repo := store.EventStore()
	ctx := context.Background()

	e := domain.Event{Name: "Assembly", Type: "Meeting", Status: domain.EventUpcoming, Date: "2025-07-04", Venue: "Hall"}
	id, err := repo.Insert(ctx, e)
	require.NoError(t, err)

	e.ID = id
	e.Status = domain.EventFinished
	e.Attendee = "120 residents"
	affected, err := repo.Update(ctx, e)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, e, *got)

	require.NoError(t, repo.Delete(ctx, id))
	require.NoError(t, repo.Delete(ctx, id))
}

func TestSettingsStore_Singleton(t *testing.T) {
	store := setupTestStore(t)
	repo := store.SettingsStore()
	ctx := context.Background()

	empty, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	first := domain.Settings{Barangay: "Poblacion", Municipality: "Tagum", Province: "Davao del Norte"}
	require.NoError(t, repo.Save(ctx, first))
	second := first
	second.Email = "office@poblacion.gov.ph"
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	var rows int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM settings").Scan(&rows))
	assert.Equal(t, 1, rows)
}
