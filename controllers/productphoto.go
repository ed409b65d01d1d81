package controllers

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"burgerpos/config"

	"github.com/gin-gonic/gin"
	"github.com/nfnt/resize"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxPhotoSize      = 5 * 1024 * 1024
	compressThreshold = 1 * 1024 * 1024
	photoDir          = "./uploads/products"
)

// saveProductPhoto writes the upload to local disk and returns the stored
// filename. Images over the compress threshold are scaled down to 800px
// wide and re-encoded as JPEG.
func saveProductPhoto(c *gin.Context, file *multipart.FileHeader, productID string) (string, error) {
	if file.Size > maxPhotoSize {
		return "", fmt.Errorf("file size exceeds the 5MB limit")
	}

	fileExt := strings.ToLower(filepath.Ext(file.Filename))
	if fileExt != ".jpg" && fileExt != ".jpeg" && fileExt != ".png" {
		return "", fmt.Errorf("unsupported file format: %s", fileExt)
	}

	if _, err := os.Stat(photoDir); os.IsNotExist(err) {
		if err := os.MkdirAll(photoDir, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create photo directory: %v", err)
		}
	}

	filename := fmt.Sprintf("%s_%d%s", productID, time.Now().Unix(), fileExt)
	fullPath := filepath.Join(photoDir, filename)

	srcFile, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer srcFile.Close()

	if file.Size > compressThreshold {
		var img image.Image
		if fileExt == ".png" {
			img, err = png.Decode(srcFile)
		} else {
			img, err = jpeg.Decode(srcFile)
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode image: %v", err)
		}

		compressed := resize.Resize(800, 0, img, resize.Lanczos3)

		outFile, err := os.Create(fullPath)
		if err != nil {
			return "", fmt.Errorf("failed to create file: %v", err)
		}
		defer outFile.Close()

		if err := jpeg.Encode(outFile, compressed, &jpeg.Options{Quality: 80}); err != nil {
			return "", fmt.Errorf("failed to save compressed image: %v", err)
		}
	} else {
		if err := c.SaveUploadedFile(file, fullPath); err != nil {
			return "", fmt.Errorf("failed to save product photo: %v", err)
		}
	}

	return filename, nil
}

// UploadProductPhoto attaches a photo to a warehouse product.
func UploadProductPhoto(c *gin.Context) {
	productID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required"})
		return
	}

	filename, err := saveProductPhoto(c, file, productID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"$set": bson.M{"photoUrl": filename, "lastUpdated": time.Now()}}
	res, err := config.WarehouseCollection.UpdateOne(context.TODO(), bson.M{"_id": objID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photoUrl": filename})
}
