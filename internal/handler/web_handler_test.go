package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/dto"
)

func TestWebPageRendersShellAndPage(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.get("/marks")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Internal Assessment Marks")
	assert.Contains(t, body, `aria-current="page"`)
	assert.Contains(t, body, "John Doe")
	assert.NotContains(t, body, "sidebar-open")
}

func TestWebUnknownPathRendersNotFound(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.get("/library/books")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Oops! Page not found")
	assert.Contains(t, body, "Return to Home")
	assert.Contains(t, body, `action="/shell/navigate"`)
}

func TestWebUnknownAPIPathAnswersJSON(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.get(testPrefix + "/library")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ROUTE_NOT_FOUND")
}

func TestWebSidebarToggleAndBackdrop(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.postForm("/shell/sidebar/toggle", "return=/hostel")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/hostel", rec.Header().Get("Location"))

	body := stack.get("/hostel").Body.String()
	assert.Contains(t, body, "sidebar-open")
	assert.Contains(t, body, `action="/shell/sidebar/close"`)

	rec = stack.postForm("/shell/sidebar/close", "return=/hostel")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body = stack.get("/hostel").Body.String()
	assert.NotContains(t, body, "sidebar-open")
	assert.NotContains(t, body, `action="/shell/sidebar/close"`)
}

func TestWebNavigateClosesSidebar(t *testing.T) {
	stack := newTestStack(t)
	stack.postForm("/shell/sidebar/toggle", "return=/")

	rec := stack.postForm("/shell/navigate", "path=/wifi/")

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/wifi", rec.Header().Get("Location"))
	assert.NotContains(t, stack.get("/wifi").Body.String(), "sidebar-open")
}

func TestWebRedirectsStayOnSite(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.postForm("/shell/sidebar/toggle", "return=//evil.example")

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestWebRejectedFormReopensDialog(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.postForm("/complaints/new", "category=hostel&title=Leaking+tap")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `role="dialog"`)
	assert.Contains(t, body, `value="Leaking tap"`)
	assert.Contains(t, body, "Please fill all required fields")
	assert.Empty(t, stack.notifications.Drain(testSession))
}

func TestWebAcceptedFormRedirectsWithToast(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.postForm("/complaints/new", "category=hostel&title=Leaking+tap&description=Room+204")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/complaints", rec.Header().Get("Location"))

	body := stack.get("/complaints").Body.String()
	assert.Contains(t, body, "Complaint submitted successfully!")
	assert.NotContains(t, body, `role="dialog"`)

	assert.NotContains(t, stack.get("/complaints").Body.String(), "Complaint submitted successfully!")
}

func TestWebDialogOpensForItem(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.get("/assignments?dialog=submit-assignment&item=1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="assignment_id" value="1"`)
	assert.Contains(t, body, `enctype="multipart/form-data"`)
}

func TestWebUnknownDialogIsIgnored(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.get("/hostel?dialog=sauna")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `role="dialog"`)
}

func TestWebUnknownTab(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.get("/complaints?tab=archived")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebChatMessageReturnsToGroup(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.postForm("/groups/messages", "group_id=2&message=See+you+at+six")

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/groups?group=2", rec.Header().Get("Location"))
	assert.Contains(t, stack.get("/groups?group=2").Body.String(), "Message sent!")
}

func TestWebActionsRedirect(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, "/events/1/like", nil, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/events", rec.Header().Get("Location"))

	rec = stack.do(http.MethodPost, "/connect/alumni/1/connect", nil, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/connect?tab=alumni", rec.Header().Get("Location"))

	rec = stack.do(http.MethodPost, "/marks/reports?scope=internal&format=pdf", nil, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), testPrefix+"/exports/"))
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "/groups", pageURL(dto.PageQuery{Path: "/groups"}))
	assert.Equal(t, "/groups?group=3", pageURL(dto.PageQuery{Path: "/groups", Group: "3"}))
	assert.Equal(t, "/connect?tab=teachers", pageURL(dto.PageQuery{Path: "/connect", Tab: "teachers"}))
}

func TestSafeReturn(t *testing.T) {
	assert.Equal(t, "/marks?tab=semester", safeReturn("/marks?tab=semester"))
	assert.Equal(t, "/", safeReturn("https://evil.example"))
	assert.Equal(t, "/", safeReturn("//evil.example"))
	assert.Equal(t, "/", safeReturn(""))
	assert.Equal(t, "/", safeReturn("/\t/evil.example"))
	assert.Equal(t, "/", safeReturn("/\n/evil.example"))
	assert.Equal(t, "/", safeReturn("/\\evil.example"))
}
