// Package handlers wires the HTTP surface. The layer is deliberately
// thin: multipart decoding and error-to-status mapping, nothing else.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/example/faceid/internal/auth"
	"github.com/example/faceid/internal/usecase"
)

// MaxUploadSize caps the accepted image payload.
const MaxUploadSize = 8 << 20 // 8 MiB

// IdentityService is the surface of the use case consumed by the
// handlers.
type IdentityService interface {
	Enroll(ctx context.Context, userID string, tenantID *string, image []byte) error
	Verify(ctx context.Context, tenantID *string, image []byte) (usecase.VerifyResult, error)
	RegisteredUserIDs(ctx context.Context, tenantID *string) ([]string, error)
	GetMetricsSummary(ctx context.Context) (*usecase.MetricsSummary, error)
}

// RegisterRoutes wires the HTTP handlers to the Gin router. When
// authMiddleware is non-nil it guards every route except the health
// check.
func RegisterRoutes(router *gin.Engine, svc IdentityService, serviceName string, authMiddleware gin.HandlerFunc) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
	})

	group := router.Group("/")
	if authMiddleware != nil {
		group.Use(authMiddleware)
	}

	group.POST("/register", func(c *gin.Context) {
		userID := c.PostForm("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "userId is required"})
			return
		}

		image, ok := readImage(c)
		if !ok {
			return
		}

		err := svc.Enroll(c.Request.Context(), userID, managerScope(c, c.PostForm("managerId")), image)
		if err != nil {
			var dup *usecase.DuplicateFaceError
			switch {
			case errors.Is(err, usecase.ErrNoFaceDetected):
				c.JSON(http.StatusBadRequest, gin.H{"detail": "No face detected"})
			case errors.Is(err, usecase.ErrAmbiguousInput):
				c.JSON(http.StatusBadRequest, gin.H{"detail": "Multiple faces detected. Please ensure only one person is in frame."})
			case errors.As(err, &dup):
				c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Face already registered for this manager under ID: %s", dup.ConflictingUserID)})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Face registered successfully"})
	})

	group.POST("/verify", func(c *gin.Context) {
		image, ok := readImage(c)
		if !ok {
			return
		}

		result, err := svc.Verify(c.Request.Context(), managerScope(c, c.PostForm("managerId")), image)
		if err != nil {
			if errors.Is(err, usecase.ErrNoFaceDetected) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "No face detected"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		if result.Verified {
			c.JSON(http.StatusOK, gin.H{
				"success":  true,
				"verified": true,
				"userId":   result.UserID,
				"score":    result.Score,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"verified": false,
			"message":  "Face not recognized",
			"score":    result.Score,
		})
	})

	group.GET("/faces", func(c *gin.Context) {
		userIDs, err := svc.RegisteredUserIDs(c.Request.Context(), managerScope(c, c.Query("managerId")))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		if userIDs == nil {
			userIDs = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "registeredUserIds": userIDs})
	})

	group.GET("/metrics", func(c *gin.Context) {
		summary, err := svc.GetMetricsSummary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, summary)
	})
}

// managerScope resolves the tenant partition for a request: an explicit
// form/query value wins, then the authenticated subject, then none.
func managerScope(c *gin.Context, explicit string) *string {
	if explicit != "" {
		return &explicit
	}
	if subject, ok := auth.GetManagerID(c.Request.Context()); ok {
		return &subject
	}
	return nil
}

func readImage(c *gin.Context) ([]byte, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "image file is required"})
		return nil, false
	}
	if file.Size > MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"detail": "image exceeds upload limit"})
		return nil, false
	}
	if contentType := file.Header.Get("Content-Type"); contentType != "" && !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"detail": "unsupported media type"})
		return nil, false
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "unable to open image"})
		return nil, false
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read image"})
		return nil, false
	}
	return data, true
}
