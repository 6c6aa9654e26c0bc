package controllers

type URIID struct {
	ID uint `uri:"id" binding:"required" example:"42"` // ID of the resource
}
