package api

import (
	"net/http"

	"github.com/adamanr/hrdesk/internal/entity"
)

func (s Server) GetContracts(w http.ResponseWriter, r *http.Request) {
	if !s.requireHR(w, r) {
		return
	}

	contracts, err := s.Controllers.ContractController.GetContracts(r.Context())
	if err != nil {
		s.fail(w, err, "Failed to get contracts")
		return
	}

	s.httpResponse(w, http.StatusOK, contracts, "success")
}

func (s Server) GetContractByID(w http.ResponseWriter, r *http.Request, id uint64) {
	if !s.requireHR(w, r) {
		return
	}

	contract, err := s.Controllers.ContractController.GetContractByID(r.Context(), id)
	if err != nil {
		s.fail(w, err, "Failed to get contract")
		return
	}

	s.httpResponse(w, http.StatusOK, contract, "success")
}

func (s Server) CreateContract(w http.ResponseWriter, r *http.Request) {
	if !s.requireHR(w, r) {
		return
	}

	var in entity.ContractInput
	if !s.decode(w, r, &in) {
		return
	}

	contract, err := s.Controllers.ContractController.CreateContract(r.Context(), in)
	if err != nil {
		s.fail(w, err, "Failed to create contract")
		return
	}

	s.httpResponse(w, http.StatusCreated, contract, "success")
}

func (s Server) UpdateContract(w http.ResponseWriter, r *http.Request, id uint64) {
	if !s.requireHR(w, r) {
		return
	}

	var in entity.ContractInput
	if !s.decode(w, r, &in) {
		return
	}

	contract, err := s.Controllers.ContractController.UpdateContract(r.Context(), id, in)
	if err != nil {
		s.fail(w, err, "Failed to update contract")
		return
	}

	s.httpResponse(w, http.StatusOK, contract, "success")
}

func (s Server) DeleteContract(w http.ResponseWriter, r *http.Request, id uint64) {
	if !s.requireHR(w, r) {
		return
	}

	if err := s.Controllers.ContractController.DeleteContract(r.Context(), id); err != nil {
		s.fail(w, err, "Failed to delete contract")
		return
	}

	s.httpResponse(w, http.StatusOK, entity.MessageResponse{Message: "Contract deleted"}, "success")
}
