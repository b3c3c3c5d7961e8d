package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/intesa-vincente/models"
	"github.com/danielhkuo/intesa-vincente/testutil"
)

func TestRegisterDevice(t *testing.T) {
	env := newTestEnv(t)

	req := testutil.MakeRequest("POST", "/devices/register",
		models.RegisterDeviceRequest{Platform: models.PlatformIOS}, deviceHeader("device-a"))
	w := env.do(req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var first models.RegisterDeviceResponse
	testutil.AssertJSON(t, w, &first)
	if first.DeviceID == "" {
		t.Error("expected a device ID")
	}
	if !first.IsNew {
		t.Error("first registration should be new")
	}

	// Same device again: found, not created
	req = testutil.MakeRequest("POST", "/devices/register",
		models.RegisterDeviceRequest{Platform: models.PlatformIOS}, deviceHeader("device-a"))
	w = env.do(req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var second models.RegisterDeviceResponse
	testutil.AssertJSON(t, w, &second)
	if second.IsNew {
		t.Error("re-registration should not be new")
	}
	if second.DeviceID != first.DeviceID {
		t.Errorf("expected the same device ID, got %q and %q", first.DeviceID, second.DeviceID)
	}
}

func TestRegisterDeviceValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		platform string
		headers  map[string]string
	}{
		{"missing device header", models.PlatformIOS, nil},
		{"unknown platform", "windows", deviceHeader("device-a")},
		{"empty platform", "", deviceHeader("device-a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/devices/register",
				models.RegisterDeviceRequest{Platform: tt.platform}, tt.headers)
			testutil.AssertStatus(t, env.do(req), http.StatusBadRequest)
		})
	}
}

func TestGetMe(t *testing.T) {
	env := newTestEnv(t)

	// Unregistered device
	w := env.do(testutil.MakeRequest("GET", "/devices/me", nil, deviceHeader("ghost")))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// Registered, no role yet
	env.do(testutil.MakeRequest("POST", "/devices/register",
		models.RegisterDeviceRequest{Platform: models.PlatformAndroid}, deviceHeader("device-a")))

	w = env.do(testutil.MakeRequest("GET", "/devices/me", nil, deviceHeader("device-a")))
	testutil.AssertStatus(t, w, http.StatusOK)

	var info models.DeviceInfo
	testutil.AssertJSON(t, w, &info)
	if info.Platform != models.PlatformAndroid {
		t.Errorf("expected platform android, got %q", info.Platform)
	}
	if info.LastSeen == "" {
		t.Error("expected a humanized last_seen")
	}
	if info.Role != nil {
		t.Errorf("expected no role marker yet, got %+v", info.Role)
	}

	// Joining a room attaches the role marker
	testutil.LinkTestDevice(t, env.st, "ABC123", "device-a", models.RoleGuesser)

	w = env.do(testutil.MakeRequest("GET", "/devices/me", nil, deviceHeader("device-a")))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &info)
	if info.Role == nil || info.Role.Role != models.RoleGuesser || info.Role.RoomID != "ABC123" {
		t.Errorf("expected a guesser binding, got %+v", info.Role)
	}
}

func TestGetMeRequiresHeader(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(testutil.MakeRequest("GET", "/devices/me", nil, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestHealthAndRoot(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(testutil.MakeRequest("GET", "/health", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = env.do(testutil.MakeRequest("GET", "/", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() == "" {
		t.Error("expected a root banner")
	}
}
