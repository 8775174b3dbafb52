package register

// InputRegisters describes the input register address space (function
// code 4). The energy totals are 32 bit counters split across register
// pairs; unlisted addresses get unknown markers from the table builder.
var InputRegisters = newTable("input", 301, map[uint16]Definition{
	0:  {Name: "inverter_status"}, // 0 waiting, 1 normal, 2 warning, 3 fault, 4 fw update
	1:  {Name: "pv1", Scaling: Deci, Unit: VoltageV},
	2:  {Name: "pv2", Scaling: Deci, Unit: VoltageV},
	3:  {Name: "p_bus", Scaling: Deci, Unit: VoltageV},
	4:  {Name: "n_bus", Scaling: Deci, Unit: VoltageV},
	5:  {Name: "ac1", Scaling: Deci, Unit: VoltageV},
	6:  {Name: "battery_throughput_total", Prom: Counter, Encoding: Uint32High, Scaling: Deci, Unit: EnergyKwh, More: []uint16{7}},
	7:  cont("battery_throughput_total"),
	8:  {Name: "pv1", Scaling: Centi, Unit: CurrentA},
	9:  {Name: "pv2", Scaling: Centi, Unit: CurrentA},
	10: {Name: "ac1", Scaling: Centi, Unit: CurrentA},
	11: {Name: "pv_total", Prom: Counter, Encoding: Uint32High, Scaling: Deci, Unit: EnergyKwh, More: []uint16{12}},
	12: cont("pv_total"),
	13: {Name: "ac1", Scaling: Centi, Unit: FrequencyHz},
	14: {Name: "charge_status"},
	15: {Name: "highbrigh_bus"}, // high voltage bus?
	16: {Name: "inverter_out", Encoding: PowerFactor},
	17: {Name: "pv1_day", Scaling: Deci, Unit: EnergyKwh},
	18: {Name: "pv1", Unit: PowerKw},
	19: {Name: "pv2_day", Scaling: Deci, Unit: EnergyKwh},
	20: {Name: "pv2", Unit: PowerKw},
	21: {Name: "grid_out_total", Prom: Counter, Encoding: Uint32High, Scaling: Deci, Unit: EnergyKwh, More: []uint16{22}},
	22: cont("grid_out_total"),
	23: {Name: "solar_diverter", Scaling: Deci, Unit: EnergyKwh},
	24: {Name: "inverter_out", Encoding: Int16, Unit: PowerW},
	25: {Name: "grid_out_day", Scaling: Deci, Unit: EnergyKwh},
	26: {Name: "grid_in_day", Scaling: Deci, Unit: EnergyKwh},
	27: {Name: "inverter_in_total", Prom: Counter, Encoding: Uint32High, Scaling: Deci, Unit: EnergyKwh, More: []uint16{28}},
	28: cont("inverter_in_total"),
	29: {Name: "discharge_year", Scaling: Deci, Unit: EnergyKwh},
	30: {Name: "grid_out", Encoding: Int16, Unit: PowerW},
	31: {Name: "eps_backup", Unit: PowerW},
	32: {Name: "grid_in_total", Prom: Counter, Encoding: Uint32High, Scaling: Deci, Unit: EnergyKwh, More: []uint16{33}},
	33: cont("grid_in_total"),
	35: {Name: "inverter_in_day", Scaling: Deci, Unit: EnergyKwh},
	36: {Name: "battery_charge_day", Scaling: Deci, Unit: EnergyKwh},
	37: {Name: "battery_discharge_day", Scaling: Deci, Unit: EnergyKwh},
	38: {Name: "inverter_countdown", Unit: TimeS},
	39: {Name: "fault_code_h", Encoding: Bitfield},
	40: {Name: "fault_code_l", Encoding: Bitfield},
	41: {Name: "inverter_heatsink", Scaling: Deci, Unit: TempC},
	42: {Name: "load_demand", Unit: PowerW},
	43: {Name: "grid_apparent", Unit: PowerVa},
	44: {Name: "inverter_out_day", Scaling: Deci, Unit: EnergyKwh},
	45: {Name: "inverter_out_total", Prom: Counter, Encoding: Uint32High, Scaling: Deci, Unit: EnergyKwh, More: []uint16{46}},
	46: cont("inverter_out_total"),
	47: {Name: "work_time_total", Encoding: Uint32High, Unit: TimeS, More: []uint16{48}},
	48: cont("work_time_total"),
	49: {Name: "system_mode"}, // 0 offline, 1 grid-tied
	50: {Name: "battery", Scaling: Centi, Unit: VoltageV},
	51: {Name: "battery", Encoding: Int16, Scaling: Centi, Unit: CurrentA},
	52: {Name: "battery", Encoding: Int16, Unit: PowerW},
	53: {Name: "eps_backup", Scaling: Deci, Unit: VoltageV},
	54: {Name: "eps_backup", Scaling: Centi, Unit: FrequencyHz},
	55: {Name: "charger", Scaling: Deci, Unit: TempC},
	56: {Name: "battery", Scaling: Deci, Unit: TempC},
	57: {Name: "charger_warning_code"},
	58: {Name: "grid_port", Scaling: Centi, Unit: CurrentA},
	59: {Name: "battery_level", Scaling: Centi},
	60: {Name: "battery_cell_01", Scaling: Milli, Unit: VoltageV},
	61: {Name: "battery_cell_02", Scaling: Milli, Unit: VoltageV},
	62: {Name: "battery_cell_03", Scaling: Milli, Unit: VoltageV},
	63: {Name: "battery_cell_04", Scaling: Milli, Unit: VoltageV},
	64: {Name: "battery_cell_05", Scaling: Milli, Unit: VoltageV},
	65: {Name: "battery_cell_06", Scaling: Milli, Unit: VoltageV},
	66: {Name: "battery_cell_07", Scaling: Milli, Unit: VoltageV},
	67: {Name: "battery_cell_08", Scaling: Milli, Unit: VoltageV},
	68: {Name: "battery_cell_09", Scaling: Milli, Unit: VoltageV},
	69: {Name: "battery_cell_10", Scaling: Milli, Unit: VoltageV},
	70: {Name: "battery_cell_11", Scaling: Milli, Unit: VoltageV},
	71: {Name: "battery_cell_12", Scaling: Milli, Unit: VoltageV},
	72: {Name: "battery_cell_13", Scaling: Milli, Unit: VoltageV},
	73: {Name: "battery_cell_14", Scaling: Milli, Unit: VoltageV},
	74: {Name: "battery_cell_15", Scaling: Milli, Unit: VoltageV},
	75: {Name: "battery_cell_16", Scaling: Milli, Unit: VoltageV},
	76: {Name: "battery_cells_1", Scaling: Deci, Unit: TempC},
	77: {Name: "battery_cells_2", Scaling: Deci, Unit: TempC},
	78: {Name: "battery_cells_3", Scaling: Deci, Unit: TempC},
	79: {Name: "battery_cells_4", Scaling: Deci, Unit: TempC},
	80: {Name: "battery_cells_sum", Scaling: Milli, Unit: VoltageV},
	81: {Name: "temp_bms_mos", Scaling: Deci, Unit: TempC},
	82: {Name: "battery_out", Encoding: Uint32High, Scaling: Milli, Unit: VoltageV, More: []uint16{83}},
	83: cont("battery_out"),
	84: {Name: "battery_full_capacity", Encoding: Uint32High, Scaling: Centi, Unit: ChargeAh, More: []uint16{85}},
	85: {Name: "battery_full_capacity", Encoding: Uint32Low, Scaling: Centi, Unit: ChargeAh, Cont: true},
	86: {Name: "battery_design_capacity", Encoding: Uint32High, Scaling: Centi, Unit: ChargeAh, More: []uint16{87}},
	87: cont("battery_design_capacity"),
	88: {Name: "battery_remaining_capacity", Encoding: Uint32High, Scaling: Centi, Unit: ChargeAh, More: []uint16{89}},
	89: cont("battery_remaining_capacity"),
	90: {Name: "battery_status_1", Second: "battery_status_2", Encoding: DUint8},
	91: {Name: "battery_status_3", Second: "battery_status_4", Encoding: DUint8},
	92: {Name: "battery_status_5", Second: "battery_status_6", Encoding: DUint8},
	93: {Name: "battery_status_7", Second: "battery_status_8", Encoding: DUint8},
	94: {Name: "battery_warning_1", Second: "battery_warning_2", Encoding: DUint8},
	96: {Name: "battery_num_cycles"},
	97: {Name: "battery_num_cells"},
	98: {Name: "bms_firmware_version"},

	100: {Name: "battery_soc"},
	101: {Name: "battery_design_capacity_2", Encoding: Uint32High, Scaling: Centi, Unit: ChargeAh, More: []uint16{102}},
	102: cont("battery_design_capacity_2"),
	103: {Name: "temp_battery_max", Scaling: Deci, Unit: TempC},
	104: {Name: "temp_battery_min", Scaling: Deci, Unit: TempC},
	105: {Name: "battery_discharge_total_2", Scaling: Deci, Unit: EnergyKwh},
	106: {Name: "battery_charge_total_2", Scaling: Deci, Unit: EnergyKwh},
	110: {Name: "battery_serial_number", Encoding: ASCII, More: []uint16{111, 112, 113, 114}},
	111: cont("battery_serial_number"),
	112: cont("battery_serial_number"),
	113: cont("battery_serial_number"),
	114: cont("battery_serial_number"),
	115: {Name: "usb_inserted", Encoding: Bool, TrueValue: 0x08}, // 0x08 true, 0x00 false

	180: {Name: "battery_discharge_total", Scaling: Deci, Unit: EnergyKwh},
	181: {Name: "battery_charge_total", Scaling: Deci, Unit: EnergyKwh},
	182: {Name: "battery_discharge_day_2", Scaling: Deci, Unit: EnergyKwh},
	183: {Name: "battery_charge_day_2", Scaling: Deci, Unit: EnergyKwh},

	201: {Name: "remote_bms_restart", Encoding: Bool},

	210: {Name: "iso_fault_value", Scaling: Deci, Unit: VoltageV},
	211: {Name: "gfci_fault_value", Scaling: Milli, Unit: CurrentA},
	212: {Name: "dci_fault_value", Scaling: Centi, Unit: CurrentA},
	213: {Name: "pv_fault_value", Scaling: Deci, Unit: VoltageV},
	214: {Name: "ac_fault_value", Scaling: Deci, Unit: VoltageV},
	215: {Name: "av_fault_value", Scaling: Centi, Unit: FrequencyHz},
	216: {Name: "temp_fault_value", Scaling: Deci, Unit: TempC},

	225: {Name: "auto_test_process_or_auto_test_step", Encoding: Bitfield},
	226: {Name: "auto_test_result"},
	227: {Name: "auto_test_stop_step"},
	229: {Name: "safety_v_f_limit", Scaling: Deci},
	230: {Name: "safety_time_limit", Scaling: Milli, Unit: TimeS},
	231: {Name: "real_v_f_value", Scaling: Deci},
	232: {Name: "test_value", Scaling: Deci},
	233: {Name: "test_treat_value", Scaling: Deci},
	234: {Name: "test_treat_time"},

	240: {Name: "ac1_m3", Scaling: Deci, Unit: VoltageV},
	241: {Name: "ac2_m3", Scaling: Deci, Unit: VoltageV},
	242: {Name: "ac3_m3", Scaling: Deci, Unit: VoltageV},
	243: {Name: "ac1_m3", Scaling: Centi, Unit: CurrentA},
	244: {Name: "ac2_m3", Scaling: Centi, Unit: CurrentA},
	245: {Name: "ac3_m3", Scaling: Centi, Unit: CurrentA},
	246: {Name: "gfci_m3", Scaling: Milli, Unit: CurrentA},

	258: {Name: "pv1_limit", Encoding: Int16, Scaling: Deci, Unit: VoltageV},
	259: {Name: "pv2_limit", Encoding: Int16, Scaling: Deci, Unit: VoltageV},
	260: {Name: "bus_limit", Encoding: Int16, Scaling: Deci, Unit: VoltageV},
	261: {Name: "n_bus_limit", Encoding: Int16, Scaling: Deci, Unit: VoltageV},
	262: {Name: "ac1_limit", Encoding: Int16, Scaling: Deci, Unit: VoltageV},
	263: {Name: "ac2_limit", Encoding: Int16, Scaling: Deci, Unit: VoltageV},
	264: {Name: "ac3_limit", Encoding: Int16, Scaling: Deci, Unit: VoltageV},
	265: {Name: "pv1_limit", Encoding: Int16, Scaling: Milli, Unit: CurrentA},
	266: {Name: "pv2_limit", Encoding: Int16, Scaling: Milli, Unit: CurrentA},
	267: {Name: "ac1_limit", Encoding: Int16, Scaling: Milli, Unit: CurrentA},
	268: {Name: "ac2_limit", Encoding: Int16, Scaling: Milli, Unit: CurrentA},
	269: {Name: "ac3_limit", Encoding: Int16, Scaling: Milli, Unit: CurrentA},
	270: {Name: "ac1_limit", Encoding: Int16, Scaling: Deci, Unit: PowerW},
	271: {Name: "ac2_limit", Encoding: Int16, Scaling: Deci, Unit: PowerW},
	272: {Name: "ac3_limit", Encoding: Int16, Scaling: Deci, Unit: PowerW},
	273: {Name: "dci_limit", Encoding: Int16, Scaling: Milli, Unit: CurrentA},
	274: {Name: "gfci_limit", Encoding: Int16, Scaling: Milli, Unit: CurrentA},
	275: {Name: "ac1_m3_limit", Encoding: Int16, Scaling: Deci, Unit: VoltageV},
	276: {Name: "ac2_m3_limit", Encoding: Int16, Scaling: Deci, Unit: VoltageV},
	277: {Name: "ac3_m3_limit", Encoding: Int16, Scaling: Deci, Unit: VoltageV},
	278: {Name: "ac1_m3_limit", Encoding: Int16, Scaling: Centi, Unit: CurrentA},
	279: {Name: "ac2_m3_limit", Encoding: Int16, Scaling: Centi, Unit: CurrentA},
	280: {Name: "ac3_m3_limit", Encoding: Int16, Scaling: Centi, Unit: CurrentA},
	281: {Name: "gfci_m3_limit", Encoding: Int16, Scaling: Milli, Unit: CurrentA},
	282: {Name: "battery_limit", Encoding: Int16, Scaling: Centi, Unit: VoltageV},
})
