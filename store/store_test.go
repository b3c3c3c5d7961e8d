package store_test

import (
	"testing"
	"time"

	"github.com/danielhkuo/intesa-vincente/models"
	"github.com/danielhkuo/intesa-vincente/store"
	"github.com/danielhkuo/intesa-vincente/testutil"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(testutil.SetupTestDB(t))
}

func TestRoomRoundTrip(t *testing.T) {
	st := newTestStore(t)
	eng := testutil.NewTestEngine()
	room := testutil.CreateTestRoom(t, st, eng, testutil.TestConfig())

	got, err := st.GetRoom()
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected the stored room back")
	}
	if got.ID != room.ID {
		t.Errorf("expected room %q, got %q", room.ID, got.ID)
	}
	if len(got.Teams) != 2 || got.Teams[0].Name != "Squadra 1" {
		t.Errorf("teams did not survive the round trip: %+v", got.Teams)
	}
	if got.GameState.CurrentWord != room.GameState.CurrentWord {
		t.Errorf("expected word %q, got %q", room.GameState.CurrentWord, got.GameState.CurrentWord)
	}
}

func TestRoomReplacedOnPut(t *testing.T) {
	st := newTestStore(t)
	eng := testutil.NewTestEngine()
	first := testutil.CreateTestRoom(t, st, eng, testutil.TestConfig())
	second := testutil.CreateTestRoom(t, st, eng, testutil.TestConfig())

	got, err := st.GetRoom()
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("expected latest room %q, got %q", second.ID, got.ID)
	}
	if got.ID == first.ID {
		t.Error("old room should have been replaced")
	}
}

func TestGetRoomAbsent(t *testing.T) {
	st := newTestStore(t)
	got, err := st.GetRoom()
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected no room, got %+v", got)
	}
}

func TestGetRoomMalformedPayload(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)

	_, err := conn.Exec(
		`INSERT INTO room (key, payload, updated_at) VALUES ($1, $2, $3)`,
		"gameRoom", "{not json", time.Now(),
	)
	if err != nil {
		t.Fatalf("seeding malformed payload: %v", err)
	}

	got, err := st.GetRoom()
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if got != nil {
		t.Errorf("malformed payload should read as no room, got %+v", got)
	}
}

func TestDeleteRoom(t *testing.T) {
	st := newTestStore(t)
	testutil.CreateTestRoom(t, st, testutil.NewTestEngine(), testutil.TestConfig())

	if err := st.DeleteRoom(); err != nil {
		t.Fatalf("DeleteRoom failed: %v", err)
	}
	got, err := st.GetRoom()
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if got != nil {
		t.Error("expected the room to be gone")
	}
}

func TestDeviceRoleRoundTrip(t *testing.T) {
	st := newTestStore(t)

	dr := models.DeviceRole{
		DeviceUUID: "device-a",
		RoomID:     "ABC123",
		Role:       models.RoleGuesser,
		TeamID:     "team1",
		PlayerID:   "p3",
		LinkedAt:   time.Now(),
	}
	if err := st.PutDeviceRole(dr); err != nil {
		t.Fatalf("PutDeviceRole failed: %v", err)
	}

	got, err := st.GetDeviceRole("device-a")
	if err != nil {
		t.Fatalf("GetDeviceRole failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected the binding back")
	}
	if got.RoomID != "ABC123" || got.Role != models.RoleGuesser {
		t.Errorf("unexpected binding %+v", got)
	}
	if got.TeamID != "team1" || got.PlayerID != "p3" {
		t.Errorf("team/player binding did not survive: %+v", got)
	}
}

func TestDeviceRoleOverwrittenOnRejoin(t *testing.T) {
	st := newTestStore(t)
	testutil.LinkTestDevice(t, st, "ABC123", "device-a", models.RolePlayer)
	testutil.LinkTestDevice(t, st, "XYZ789", "device-a", models.RoleGuesser)

	got, err := st.GetDeviceRole("device-a")
	if err != nil {
		t.Fatalf("GetDeviceRole failed: %v", err)
	}
	if got.RoomID != "XYZ789" || got.Role != models.RoleGuesser {
		t.Errorf("expected the rejoin to win, got %+v", got)
	}
}

func TestGetDeviceRoleAbsent(t *testing.T) {
	st := newTestStore(t)
	got, err := st.GetDeviceRole("ghost")
	if err != nil {
		t.Fatalf("GetDeviceRole failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected no binding, got %+v", got)
	}
}

func TestDeleteDeviceRoles(t *testing.T) {
	st := newTestStore(t)
	testutil.LinkTestDevice(t, st, "ABC123", "device-a", models.RolePlayer)
	testutil.LinkTestDevice(t, st, "ABC123", "device-b", models.RoleGuesser)

	if err := st.DeleteDeviceRoles(); err != nil {
		t.Fatalf("DeleteDeviceRoles failed: %v", err)
	}
	for _, d := range []string{"device-a", "device-b"} {
		got, err := st.GetDeviceRole(d)
		if err != nil {
			t.Fatalf("GetDeviceRole(%s) failed: %v", d, err)
		}
		if got != nil {
			t.Errorf("expected %s's binding to be gone, got %+v", d, got)
		}
	}
}

func TestRegisterDevice(t *testing.T) {
	st := newTestStore(t)

	id1, isNew, err := st.RegisterDevice("device-a", models.PlatformIOS)
	if err != nil {
		t.Fatalf("RegisterDevice failed: %v", err)
	}
	if !isNew {
		t.Error("first registration should be new")
	}
	if id1 == "" {
		t.Error("expected a generated device ID")
	}

	id2, isNew, err := st.RegisterDevice("device-a", models.PlatformIOS)
	if err != nil {
		t.Fatalf("second RegisterDevice failed: %v", err)
	}
	if isNew {
		t.Error("second registration should not be new")
	}
	if id2 != id1 {
		t.Errorf("expected the same ID on re-registration, got %q and %q", id1, id2)
	}

	dev, err := st.GetDevice("device-a")
	if err != nil {
		t.Fatalf("GetDevice failed: %v", err)
	}
	if dev == nil || dev.Platform != models.PlatformIOS {
		t.Errorf("unexpected device record %+v", dev)
	}
}

func TestGetDeviceAbsent(t *testing.T) {
	st := newTestStore(t)
	dev, err := st.GetDevice("ghost")
	if err != nil {
		t.Fatalf("GetDevice failed: %v", err)
	}
	if dev != nil {
		t.Errorf("expected no device, got %+v", dev)
	}
}
