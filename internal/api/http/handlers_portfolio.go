package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/damataprodutora/portfolio-backend/internal/portfolio"
	"github.com/damataprodutora/portfolio-backend/internal/uploads"
)

// PortfolioHandler serves the public feed snapshot and the authenticated
// whole-collection save, plus image uploads.
type PortfolioHandler struct {
	store   *portfolio.Store
	uploads *uploads.Store
}

func NewPortfolioHandler(store *portfolio.Store, uploadStore *uploads.Store) *PortfolioHandler {
	return &PortfolioHandler{store: store, uploads: uploadStore}
}

// Snapshot serves the live collection. A fresh deployment answers with an
// empty array instead of a 404.
func (h *PortfolioHandler) Snapshot(c *gin.Context) {
	projects, err := h.store.Load()
	if err != nil {
		log.Printf("[error] operation=portfolio_snapshot error=%v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Could not load the portfolio."})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Save overwrites the stored collection with the submitted one. This is the
// whole-collection replace contract: last writer wins.
func (h *PortfolioHandler) Save(c *gin.Context) {
	var req savePortfolioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "Invalid request body."})
		return
	}

	if err := h.store.SaveAll(req.Data); err != nil {
		log.Printf("[error] operation=save_portfolio error=%v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Could not save the portfolio. Please try again."})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Success: true, Message: "Portfolio saved successfully!"})
}

// UploadImages stores up to uploads.MaxFilesPerRequest images and returns their
// public paths in receipt order.
func (h *PortfolioHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "Invalid multipart form."})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "At least one image is required."})
		return
	}
	if len(files) > uploads.MaxFilesPerRequest {
		c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: "Too many images in one upload."})
		return
	}

	urls, err := h.uploads.SaveAll("images", files)
	if err != nil {
		log.Printf("[error] operation=upload_images error=%v", err)
		c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Could not store the images. Please try again."})
		return
	}

	c.JSON(http.StatusOK, uploadResp{Success: true, URLs: urls})
}
