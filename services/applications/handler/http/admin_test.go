package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/yuanzh/recruit-portal/internal/pkg/models"
	"github.com/yuanzh/recruit-portal/services/applications"
	"github.com/yuanzh/recruit-portal/services/applications/mocks"
)

func TestAdminListApplications_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockApplicationUC(ctrl)
	handler := NewAdminHandler(mockUC)

	expected := []*models.Application{
		{ID: 2, Name: "李四", Status: models.StatusPending},
		{ID: 1, Name: "张三", Status: models.StatusPending},
	}
	mockUC.EXPECT().ListApplications(gomock.Any(), models.ApplicationFilter{
		Status: models.StatusPending,
		Query:  "张",
	}).Return(expected, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/admin/applications?status=pending&q=%E5%BC%A0", "")

	// Act
	err := handler.ListApplications(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 2)
}

func TestAdminListApplications_AllMeansNoFilter(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockApplicationUC(ctrl)
	handler := NewAdminHandler(mockUC)

	mockUC.EXPECT().ListApplications(gomock.Any(), models.ApplicationFilter{}).
		Return([]*models.Application{}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/admin/applications?status=all", "")

	// Act
	err := handler.ListApplications(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminListApplications_InvalidStatus(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockApplicationUC(ctrl)
	handler := NewAdminHandler(mockUC)

	mockUC.EXPECT().ListApplications(gomock.Any(), gomock.Any()).
		Return(nil, applications.ErrInvalidStatus)

	c, rec := newJSONContext(http.MethodGet, "/api/admin/applications?status=archived", "")

	// Act
	err := handler.ListApplications(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status filter", decodeBody(t, rec)["error"])
}

func TestAdminGetApplication_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockApplicationUC(ctrl)
	handler := NewAdminHandler(mockUC)

	result := &models.StatusLookupResult{
		Application: &models.Application{ID: 7, Name: "张三", Status: models.StatusInterview},
		Notifications: []*models.Notification{
			{ID: 5, ApplicationID: 7, Type: "interview", Content: "面试定于周五"},
		},
	}
	mockUC.EXPECT().GetApplication(gomock.Any(), int64(7)).Return(result, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/admin/applications/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	// Act
	err := handler.GetApplication(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	app := data["application"].(map[string]interface{})
	assert.Equal(t, float64(7), app["id"])
	assert.Len(t, data["notifications"], 1)
}

func TestAdminGetApplication_InvalidID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAdminHandler(mocks.NewMockApplicationUC(ctrl))

	c, rec := newJSONContext(http.MethodGet, "/api/admin/applications/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	// Act
	err := handler.GetApplication(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid application ID", decodeBody(t, rec)["error"])
}

func TestAdminGetApplication_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockApplicationUC(ctrl)
	handler := NewAdminHandler(mockUC)

	mockUC.EXPECT().GetApplication(gomock.Any(), int64(99)).
		Return(nil, applications.ErrApplicationNotFound)

	c, rec := newJSONContext(http.MethodGet, "/api/admin/applications/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	// Act
	err := handler.GetApplication(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminUpdateStatus_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockApplicationUC(ctrl)
	handler := NewAdminHandler(mockUC)

	updated := &models.Application{ID: 7, Phone: "13800138000", Status: models.StatusWritten}
	mockUC.EXPECT().UpdateStatus(gomock.Any(), int64(7), &models.UpdateStatusRequest{
		Status:  models.StatusWritten,
		Message: "笔试定于下周三上午九点",
		SendSMS: true,
	}).Return(updated, nil)

	payload := `{"status":"written","message":"笔试定于下周三上午九点","send_sms":true}`
	c, rec := newJSONContext(http.MethodPut, "/api/admin/applications/7/status", payload)
	c.SetParamNames("id")
	c.SetParamValues("7")

	// Act
	err := handler.UpdateStatus(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Status updated successfully", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "written", data["status"])
}

func TestAdminUpdateStatus_InvalidStatus(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockApplicationUC(ctrl)
	handler := NewAdminHandler(mockUC)

	mockUC.EXPECT().UpdateStatus(gomock.Any(), int64(7), gomock.Any()).
		Return(nil, applications.ErrInvalidStatus)

	c, rec := newJSONContext(http.MethodPut, "/api/admin/applications/7/status", `{"status":"archived"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	// Act
	err := handler.UpdateStatus(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status value", decodeBody(t, rec)["error"])
}

func TestAdminUpdateStatus_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockApplicationUC(ctrl)
	handler := NewAdminHandler(mockUC)

	mockUC.EXPECT().UpdateStatus(gomock.Any(), int64(404), gomock.Any()).
		Return(nil, applications.ErrApplicationNotFound)

	c, rec := newJSONContext(http.MethodPut, "/api/admin/applications/404/status", `{"status":"pass"}`)
	c.SetParamNames("id")
	c.SetParamValues("404")

	// Act
	err := handler.UpdateStatus(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
