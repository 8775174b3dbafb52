package register

// HoldingRegisters describes the holding register address space
// (function code 3). Addresses 4..6 and 146..201 have no known meaning
// and are filled with unknown markers by the table builder.
var HoldingRegisters = newTable("holding", 201, map[uint16]Definition{
	0:  {Name: "device_type_code", Encoding: Hex}, // 0x2xxx inverter, 0x5xxx EMS
	1:  {Name: "inverter_module", Encoding: Uint32High, More: []uint16{2}},
	2:  cont("inverter_module"),
	3:  {Name: "num_mppt", Second: "num_phases", Encoding: DUint8},
	7:  {Name: "enable_ammeter", Encoding: Bool},
	8:  {Name: "first_battery_serial_number", Encoding: ASCII, More: []uint16{9, 10, 11, 12}},
	9:  cont("first_battery_serial_number"),
	10: cont("first_battery_serial_number"),
	11: cont("first_battery_serial_number"),
	12: cont("first_battery_serial_number"),
	13: {Name: "inverter_serial_number", Encoding: ASCII, More: []uint16{14, 15, 16, 17}},
	14: cont("inverter_serial_number"),
	15: cont("inverter_serial_number"),
	16: cont("inverter_serial_number"),
	17: cont("inverter_serial_number"),
	18: {Name: "first_battery_bms_firmware_version"},
	19: {Name: "dsp_firmware_version"},
	20: {Name: "enable_charge_target", Encoding: Bool, WriteSafe: true},
	21: {Name: "arm_firmware_version"},
	22: {Name: "usb_device_inserted"}, // 0 none, 1 wifi, 2 disk
	23: {Name: "select_arm_chip", Encoding: Bool},
	24: {Name: "variable_address"},
	25: {Name: "variable_value", Encoding: Int16},
	26: {Name: "p_grid_port_max_output", Unit: PowerW}, // export limit
	27: {Name: "battery_power_mode", WriteSafe: true},  // 0 export/max, 1 demand/self-consumption
	28: {Name: "enable_60hz_freq_mode", Encoding: Bool},
	// battery calibration stages: 0 off, 1 start/discharge, 2 set lower
	// limit, 3 charge, 4 set upper limit, 5 balance, 6 set full
	// capacity, 7 finish
	29: {Name: "soc_force_adjust"},
	30: {Name: "inverter_modbus_address", Encoding: Uint8},
	31: {Name: "charge_slot_2_start", Encoding: Time, WriteSafe: true},
	32: {Name: "charge_slot_2_end", Encoding: Time, WriteSafe: true},
	33: {Name: "user_code"},
	34: {Name: "modbus_version", Scaling: Centi}, // inverter 1.40, EMS 3.40
	35: {Name: "system_time_year", WriteSafe: true},
	36: {Name: "system_time_month", WriteSafe: true},
	37: {Name: "system_time_day", WriteSafe: true},
	38: {Name: "system_time_hour", WriteSafe: true},
	39: {Name: "system_time_minute", WriteSafe: true},
	40: {Name: "system_time_second", WriteSafe: true},
	41: {Name: "enable_drm_rj45_port", Encoding: Bool},
	42: {Name: "ct_adjust", Encoding: Bitfield}, // 1 reverse polarity of the CT clamp
	43: {Name: "charge_soc", Second: "discharge_soc", Encoding: DUint8},
	44: {Name: "discharge_slot_2_start", Encoding: Time, WriteSafe: true},
	45: {Name: "discharge_slot_2_end", Encoding: Time, WriteSafe: true},
	46: {Name: "bms_chip_version"},
	47: {Name: "meter_type"}, // 0 CT/EM418, 1 EM115
	48: {Name: "reverse_115_meter_direct", Encoding: Bool},
	49: {Name: "reverse_418_meter_direct", Encoding: Bool},
	50: {Name: "active_power_rate", Scaling: Centi}, // max output active power percent
	51: {Name: "reactive_power_rate", Scaling: Centi},
	52: {Name: "power_factor", Encoding: PowerFactor},
	53: {Name: "inverter_auto_restart_state", Second: "inverter_enable_state", Encoding: DUint8},
	54: {Name: "battery_type"}, // 0 lead acid, 1 lithium
	55: {Name: "battery_nominal_capacity", Unit: ChargeAh},
	56: {Name: "discharge_slot_1_start", Encoding: Time, WriteSafe: true},
	57: {Name: "discharge_slot_1_end", Encoding: Time, WriteSafe: true},
	58: {Name: "enable_auto_judge_battery_type", Encoding: Bool},
	59: {Name: "enable_discharge", Encoding: Bool, WriteSafe: true},
	60: {Name: "pv_input_start", Scaling: Deci, Unit: VoltageV},
	61: {Name: "inverter_start_time", Unit: TimeS},
	62: {Name: "inverter_restart_delay_time", Unit: TimeS},
	63: {Name: "ac_low_out", Scaling: Deci, Unit: VoltageV},
	64: {Name: "ac_high_out", Scaling: Deci, Unit: VoltageV},
	65: {Name: "ac_low_out", Scaling: Centi, Unit: FrequencyHz},
	66: {Name: "ac_high_out", Scaling: Centi, Unit: FrequencyHz},
	67: {Name: "ac_low_out_time"},
	68: {Name: "ac_high_out_time"},
	69: {Name: "ac_low_out_time"},
	70: {Name: "ac_high_out_time"},
	71: {Name: "ac_low_in", Scaling: Deci, Unit: VoltageV},
	72: {Name: "ac_high_in", Scaling: Deci, Unit: VoltageV},
	73: {Name: "ac_low_in", Scaling: Centi, Unit: FrequencyHz},
	74: {Name: "ac_high_in", Scaling: Centi, Unit: FrequencyHz},
	75: {Name: "ac_low_in_time"},
	76: {Name: "ac_high_in_time"},
	77: {Name: "ac_low_in_time"},
	78: {Name: "ac_high_in_time"},
	79: {Name: "ac_low_c", Scaling: Deci, Unit: VoltageV},
	80: {Name: "ac_high_c", Scaling: Deci, Unit: VoltageV},
	81: {Name: "ac_low_c", Scaling: Centi, Unit: FrequencyHz},
	82: {Name: "ac_high_c", Scaling: Centi, Unit: FrequencyHz},
	83: {Name: "10_min_protection", Scaling: Deci, Unit: VoltageV},
	84: {Name: "iso1"},
	85: {Name: "iso2"},
	// protection events: ground fault circuit interrupter, DC injection
	86: {Name: "gfci_1_i", Scaling: Milli, Unit: CurrentA},
	87: {Name: "gfci_1_time"},
	88: {Name: "gfci_2_i", Scaling: Milli, Unit: CurrentA},
	89: {Name: "gfci_2_time"},
	90: {Name: "dci_1_i", Scaling: Milli, Unit: CurrentA},
	91: {Name: "dci_1_time"},
	92: {Name: "dci_2_i", Scaling: Milli, Unit: CurrentA},
	93: {Name: "dci_2_time"},
	94: {Name: "charge_slot_1_start", Encoding: Time, WriteSafe: true},
	95: {Name: "charge_slot_1_end", Encoding: Time, WriteSafe: true},
	96: {Name: "enable_charge", Encoding: Bool, WriteSafe: true},
	97: {Name: "battery_under_protection_limit", Scaling: Centi, Unit: VoltageV},
	98: {Name: "battery_over_protection_limit", Scaling: Centi, Unit: VoltageV},
	99: {Name: "pv1_voltage_adjust", Scaling: Deci, Unit: VoltageV},

	100: {Name: "pv2_voltage_adjust", Scaling: Deci, Unit: VoltageV},
	101: {Name: "grid_r_voltage_adjust", Scaling: Deci, Unit: VoltageV},
	102: {Name: "grid_s_voltage_adjust", Scaling: Deci, Unit: VoltageV},
	103: {Name: "grid_t_voltage_adjust", Scaling: Deci, Unit: VoltageV},
	104: {Name: "grid_power_adjust", Unit: PowerW},
	105: {Name: "battery_voltage_adjust", Scaling: Deci, Unit: VoltageV},
	106: {Name: "pv1_power_adjust", Unit: PowerW},
	107: {Name: "pv2_power_adjust", Unit: PowerW},
	108: {Name: "battery_low_force_charge_time", Unit: TimeM},
	109: {Name: "enable_bms_read", Encoding: Bool},
	110: {Name: "battery_soc_reserve", Scaling: Centi, WriteSafe: true},
	// rendered as W in the vendor dashboard (50% = 2600W)
	111: {Name: "battery_charge_limit", Scaling: Centi, WriteSafe: true},
	112: {Name: "battery_discharge_limit", Scaling: Centi, WriteSafe: true},
	113: {Name: "enable_buzzer", Encoding: Bool},
	114: {Name: "battery_discharge_min_power_reserve", Scaling: Centi, WriteSafe: true},
	115: {Name: "island_check_continue"},
	116: {Name: "charge_target_soc", Scaling: Centi, WriteSafe: true}, // used when enable_charge_target is set
	117: {Name: "charge_soc_stop_2", Scaling: Centi},
	118: {Name: "discharge_soc_stop_2", Scaling: Centi},
	119: {Name: "charge_soc_stop_1", Scaling: Centi},
	120: {Name: "discharge_soc_stop_1", Scaling: Centi},
	121: {Name: "local_command_test"},
	122: {Name: "power_factor_function_model"},
	123: {Name: "frequency_load_limit_rate"},
	124: {Name: "enable_low_voltage_fault_ride_through", Encoding: Bool},
	125: {Name: "enable_frequency_derating", Encoding: Bool},
	126: {Name: "enable_above_6kw_system", Encoding: Bool},
	127: {Name: "start_system_auto_test", Encoding: Bool},
	128: {Name: "enable_spi", Encoding: Bool},
	129: {Name: "pf_cmd_memory_state"},
	// power factor limit line points: lp load percentage, pf power factor
	130: {Name: "pf_limit_lp1_lp", Scaling: Deci},
	131: {Name: "pf_limit_lp1_pf", Encoding: PowerFactor},
	132: {Name: "pf_limit_lp2_lp", Scaling: Deci},
	133: {Name: "pf_limit_lp2_pf", Encoding: PowerFactor},
	134: {Name: "pf_limit_lp3_lp", Scaling: Deci},
	135: {Name: "pf_limit_lp3_pf", Encoding: PowerFactor},
	136: {Name: "pf_limit_lp4_lp", Scaling: Deci},
	137: {Name: "pf_limit_lp4_pf", Encoding: PowerFactor},
	138: {Name: "cei021_v1s"},
	139: {Name: "cei021_v2s"},
	140: {Name: "cei021_v1l"},
	141: {Name: "cei021_v2l"},
	142: {Name: "cei021_q_lock_in_power", Scaling: Deci},
	143: {Name: "cei021_q_lock_out_power", Scaling: Deci},
	144: {Name: "cei021_lock_in_grid_voltage", Scaling: Deci, Unit: VoltageV},
	145: {Name: "cei021_lock_out_grid_voltage", Scaling: Deci, Unit: VoltageV},
})
